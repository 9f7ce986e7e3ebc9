package menu

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var allowedExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// ValidateImageExtension returns the content type for an allowed image file.
func ValidateImageExtension(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return "", errors.New("file extension missing")
	}

	contentType, ok := allowedExt[ext]
	if !ok {
		return "", errors.New("file type not allowed")
	}

	return contentType, nil
}
