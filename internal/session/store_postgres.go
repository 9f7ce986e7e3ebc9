package session

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Create(ctx context.Context, s *Session) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Cart.Lines == nil {
		s.Cart = NewCart()
	}

	cartJSON, err := json.Marshal(s.Cart)
	if err != nil {
		return errors.Wrap(err, "marshal cart")
	}

	return p.db.QueryRow(ctx, `
		INSERT INTO sessions (id, user_id, username, role, cart)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, s.ID, s.UserID, s.Username, s.Role, cartJSON).Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (p *PostgresStore) Get(ctx context.Context, id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	var (
		s        Session
		cartJSON []byte
	)
	err := p.db.QueryRow(ctx, `
		SELECT id, user_id, username, role, cart, created_at, updated_at
		FROM sessions
		WHERE id = $1
	`, id).Scan(&s.ID, &s.UserID, &s.Username, &s.Role, &cartJSON, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(cartJSON, &s.Cart); err != nil {
		return nil, errors.Wrap(err, "unmarshal cart")
	}
	return &s, nil
}

func (p *PostgresStore) SaveCart(ctx context.Context, id string, cart Cart) error {
	cartJSON, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "marshal cart")
	}

	cmd, err := p.db.Exec(ctx, `
		UPDATE sessions
		SET cart = $1,
		    updated_at = now()
		WHERE id = $2
	`, cartJSON, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	_, err := p.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}
