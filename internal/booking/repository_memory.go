package booking

import (
	"context"
	"sort"
	"sync"
)

type InMemoryRepository struct {
	mu       sync.RWMutex
	bookings []Booking
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = int64(len(r.bookings) + 1)
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Booking, len(r.bookings))
	copy(out, r.bookings)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].TimeOfDay > out[j].TimeOfDay
	})
	return out, nil
}
