package booking

import "context"

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	// List returns bookings newest date first.
	List(ctx context.Context) ([]Booking, error)
}
