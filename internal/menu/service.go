package menu

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrItemNotFound    = errors.New("menu item not found")
	ErrInvalidItem     = errors.New("name and a positive price are required")
	ErrInvalidImage    = errors.New("invalid image file")
	ErrUploadsDisabled = errors.New("image uploads are not configured")
)

// Storage keeps uploaded menu images and returns their public URL.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

// NewService accepts a nil storage; uploads then fail with ErrUploadsDisabled.
func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Item, error) {
	return s.repo.Get(ctx, id)
}

// ImageUpload is an optional image file sent with a new item.
type ImageUpload struct {
	Filename string
	Body     io.Reader
}

type AddInput struct {
	Name        string
	Description string
	Price       float64
	Image       string
	Category    string
	Upload      *ImageUpload
}

// --------------------------------------------------
// Admin: add item (uploaded image wins over the image field)
// --------------------------------------------------
func (s *Service) Add(ctx context.Context, in AddInput) (*Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price <= 0 {
		return nil, ErrInvalidItem
	}

	item := &Item{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Image:       strings.TrimSpace(in.Image),
		Category:    strings.TrimSpace(in.Category),
	}

	if in.Upload != nil {
		url, err := s.uploadImage(ctx, in.Upload)
		if err != nil {
			return nil, err
		}
		item.Image = url
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "create menu item")
	}
	return item, nil
}

func (s *Service) uploadImage(ctx context.Context, up *ImageUpload) (string, error) {
	if s.storage == nil {
		return "", ErrUploadsDisabled
	}

	contentType, err := ValidateImageExtension(up.Filename)
	if err != nil {
		return "", errors.Wrap(ErrInvalidImage, err.Error())
	}

	key := fmt.Sprintf(
		"menu/%s%s",
		uuid.New().String(),
		strings.ToLower(filepath.Ext(up.Filename)),
	)

	url, err := s.storage.Upload(ctx, key, up.Body, contentType)
	if err != nil {
		return "", errors.Wrap(err, "upload image")
	}
	return url, nil
}

// --------------------------------------------------
// Admin: delete item
// --------------------------------------------------
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
