package order

import "time"

type Order struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// Item is one order line with the unit price at the time of purchase.
// MenuID is nil when the dish was removed from the menu.
type Item struct {
	OrderID  int64   `json:"order_id"`
	MenuID   *int64  `json:"menu_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// AdminOrder is an order joined with the username that placed it.
type AdminOrder struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}
