package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func ConnectPostgres(ctx context.Context, dsn string, log logrus.FieldLogger) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "parse DATABASE_URL")
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, errors.Wrap(err, "create pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "postgres connection failed")
	}

	log.Info("connected to postgres")
	return pool, nil
}

// InitSchema creates every table the service needs if it is missing.
func InitSchema(ctx context.Context, pool *pgxpool.Pool, log logrus.FieldLogger) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt.sql); err != nil {
			return errors.Wrapf(err, "create %s", stmt.table)
		}
	}

	log.Info("schema initialized")
	return nil
}

var schema = []struct {
	table string
	sql   string
}{
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username VARCHAR(100) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'user',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`},
	{"menu", `
		CREATE TABLE IF NOT EXISTS menu (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(150) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10, 2) NOT NULL,
			image VARCHAR(500) NOT NULL DEFAULT '',
			category VARCHAR(100) NOT NULL DEFAULT ''
		)
	`},
	{"bookings", `
		CREATE TABLE IF NOT EXISTS bookings (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			phone VARCHAR(20) NOT NULL,
			booking_date DATE NOT NULL,
			booking_time TIME NOT NULL,
			guests INT NOT NULL
		)
	`},
	{"orders", `
		CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			total_amount NUMERIC(10, 2) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`},
	{"order_items", `
		CREATE TABLE IF NOT EXISTS order_items (
			id BIGSERIAL PRIMARY KEY,
			order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_id BIGINT NULL REFERENCES menu(id) ON DELETE SET NULL,
			quantity INT NOT NULL,
			price NUMERIC(10, 2) NOT NULL
		)
	`},
	{"sessions", `
		CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			username VARCHAR(100) NOT NULL,
			role VARCHAR(20) NOT NULL,
			cart JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`},
}
