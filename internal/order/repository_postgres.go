package order

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// PLACE ORDER (order row + item rows, one transaction)
// --------------------------------------------------
func (r *PostgresRepository) Place(
	ctx context.Context,
	userID int64,
	total float64,
	items []Item,
) (*Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	o := &Order{UserID: userID, TotalAmount: total}
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, total_amount)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, userID, total).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "insert order")
	}

	// menu_id resolves to NULL for dishes deleted since they were added
	// to the cart, so a stale line never violates the foreign key.
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
			INSERT INTO order_items (order_id, menu_id, quantity, price)
			VALUES ($1, (SELECT id FROM menu WHERE id = $2), $3, $4)
		`, o.ID, it.MenuID, it.Quantity, it.Price)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return nil, errors.Wrap(err, "insert order items")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "commit order")
	}
	return o, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, total_amount, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]AdminOrder, error) {
	rows, err := r.db.Query(ctx, `
		SELECT o.id, u.username, o.total_amount, o.created_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC, o.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []AdminOrder{}
	for rows.Next() {
		var o AdminOrder
		if err := rows.Scan(&o.ID, &o.Username, &o.TotalAmount, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
