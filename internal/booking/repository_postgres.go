package booking

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, b *Booking) error {
	tod := pgtype.Time{Microseconds: b.TimeOfDay.Microseconds(), Valid: true}

	return r.db.QueryRow(ctx, `
		INSERT INTO bookings (name, phone, booking_date, booking_time, guests)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, b.Name, b.Phone, b.Date, tod, b.Guests).Scan(&b.ID)
}

func (r *PostgresRepository) List(ctx context.Context) ([]Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, phone, booking_date, booking_time, guests
		FROM bookings
		ORDER BY booking_date DESC, booking_time DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []Booking{}
	for rows.Next() {
		var (
			b   Booking
			tod pgtype.Time
		)
		if err := rows.Scan(&b.ID, &b.Name, &b.Phone, &b.Date, &tod, &b.Guests); err != nil {
			return nil, err
		}
		b.TimeOfDay = time.Duration(tod.Microseconds) * time.Microsecond
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
