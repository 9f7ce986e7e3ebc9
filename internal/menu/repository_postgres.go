package menu

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

func (r *PostgresRepository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, price, image, category
		FROM menu
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID,
			&it.Name,
			&it.Description,
			&it.Price,
			&it.Image,
			&it.Category,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Item, error) {
	var it Item
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, price, image, category
		FROM menu
		WHERE id = $1
	`, id).Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.Image, &it.Category)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &it, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *Item) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO menu (name, description, price, image, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		item.Name,
		item.Description,
		item.Price,
		item.Image,
		item.Category,
	).Scan(&item.ID)
}

// Delete leaves historical order_items in place; their menu_id becomes NULL.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM menu WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}
