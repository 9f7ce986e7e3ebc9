package order

import (
	"context"
	"sync"
	"time"
)

// InMemoryRepository keeps orders in process. When PlaceErr is set, Place
// fails and stores nothing.
type InMemoryRepository struct {
	mu        sync.RWMutex
	orders    []Order
	items     []Item
	usernames map[int64]string

	PlaceErr error
}

func NewInMemoryRepository(usernames map[int64]string) *InMemoryRepository {
	if usernames == nil {
		usernames = make(map[int64]string)
	}
	return &InMemoryRepository{usernames: usernames}
}

func (r *InMemoryRepository) Place(ctx context.Context, userID int64, total float64, items []Item) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.PlaceErr != nil {
		return nil, r.PlaceErr
	}

	o := Order{
		ID:          int64(len(r.orders) + 1),
		UserID:      userID,
		TotalAmount: total,
		CreatedAt:   time.Now(),
	}
	r.orders = append(r.orders, o)
	for _, it := range items {
		it.OrderID = o.ID
		r.items = append(r.items, it)
	}
	return &o, nil
}

func (r *InMemoryRepository) Items(orderID int64) []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Item
	for _, it := range r.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := []Order{}
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			orders = append(orders, r.orders[i])
		}
	}
	return orders, nil
}

func (r *InMemoryRepository) ListAll(ctx context.Context) ([]AdminOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := []AdminOrder{}
	for i := len(r.orders) - 1; i >= 0; i-- {
		o := r.orders[i]
		orders = append(orders, AdminOrder{
			ID:          o.ID,
			Username:    r.usernames[o.UserID],
			TotalAmount: o.TotalAmount,
			CreatedAt:   o.CreatedAt,
		})
	}
	return orders, nil
}
