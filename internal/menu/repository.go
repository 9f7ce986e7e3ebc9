package menu

import "context"

// Repository defines all database operations for menu items
type Repository interface {
	List(ctx context.Context) ([]Item, error)

	// Get returns ErrItemNotFound for unknown ids.
	Get(ctx context.Context, id int64) (*Item, error)

	// Create assigns the id.
	Create(ctx context.Context, item *Item) error

	// Delete returns ErrItemNotFound when nothing was deleted.
	Delete(ctx context.Context, id int64) error
}
