package order

import (
	"context"
	"sort"

	"pearl/internal/session"
)

type Repository interface {
	// Place writes the order and all of its items atomically.
	Place(ctx context.Context, userID int64, total float64, items []Item) (*Order, error)
	ListByUser(ctx context.Context, userID int64) ([]Order, error)
	ListAll(ctx context.Context) ([]AdminOrder, error)
}

// itemsFromCart returns the cart lines ordered by menu id.
func itemsFromCart(cart session.Cart) []Item {
	items := make([]Item, 0, len(cart.Lines))
	for id, line := range cart.Lines {
		menuID := id
		items = append(items, Item{MenuID: &menuID, Quantity: line.Qty, Price: line.Price})
	}
	sort.Slice(items, func(i, j int) bool { return *items[i].MenuID < *items[j].MenuID })
	return items
}
