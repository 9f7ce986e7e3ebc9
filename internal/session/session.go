package session

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("session not found")

// Session is the server-held state correlated with a client token.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Cart      Cart      `json:"cart"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == "admin"
}

// Store persists sessions. Get returns ErrNotFound for unknown ids.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	SaveCart(ctx context.Context, id string, cart Cart) error
	Delete(ctx context.Context, id string) error
}
