package dashboard

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Stats summarizes the restaurant for the admin dashboard.
type Stats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menu_items"`
	Bookings  int64   `json:"bookings"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

type Repository interface {
	Stats(ctx context.Context) (Stats, error)
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM menu),
			(SELECT COUNT(*) FROM bookings),
			(SELECT COUNT(*) FROM orders),
			(SELECT COALESCE(SUM(total_amount), 0)::float8 FROM orders)
	`).Scan(&s.Users, &s.MenuItems, &s.Bookings, &s.Orders, &s.Revenue)
	return s, err
}

// StaticRepository returns fixed stats.
type StaticRepository struct {
	Value Stats
	Err   error
}

func (r StaticRepository) Stats(ctx context.Context) (Stats, error) {
	return r.Value, r.Err
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// Admin: GET /admin/dashboard, GET /dashboard
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	stats, err := h.repo.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
