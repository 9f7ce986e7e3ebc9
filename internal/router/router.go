package router

import (
	"net/http"
	"time"

	"pearl/internal/auth"
	"pearl/internal/booking"
	"pearl/internal/cart"
	"pearl/internal/dashboard"
	"pearl/internal/llm"
	"pearl/internal/menu"
	"pearl/internal/middleware"
	"pearl/internal/order"
	"pearl/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Deps are the handlers and shared services the HTTP surface is built from.
type Deps struct {
	Log         logrus.FieldLogger
	CORSOrigins []string
	Tokens      *auth.Tokens
	Sessions    session.Store

	Auth      *auth.Handler
	AuthAdmin *auth.AdminHandler
	Menu      *menu.Handler
	MenuAdmin *menu.AdminHandler
	Cart      *cart.Handler
	Booking   *booking.Handler
	Order     *order.Handler
	AI        *llm.Handler
	Dashboard *dashboard.Handler
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), middleware.RequestLogger(d.Log))

	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{llm.DegradedHeader, middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.Use(middleware.Session(d.Tokens, d.Sessions, d.Log))

	// ───────────────────────── HEALTH ─────────────────────────
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	r.GET("/health", health)
	r.GET("/api/health", health)

	// ───────────────────────── AUTH ─────────────────────────
	r.POST("/api/register", d.Auth.Register)
	r.POST("/api/login", d.Auth.APILogin)
	r.POST("/login", d.Auth.FormLogin)
	r.GET("/logout", d.Auth.Logout)
	r.POST("/logout", d.Auth.Logout)

	// ───────────────────────── PUBLIC ─────────────────────────
	api := r.Group("/api")
	{
		api.GET("/menu", d.Menu.List)
		api.GET("/cart", d.Cart.Get)
		api.GET("/cart/count", d.Cart.Count)
		api.POST("/cart/clear", d.Cart.Clear)
		api.POST("/book-table", d.Booking.BookTable)
		api.GET("/ai-description", d.AI.Description)
		api.GET("/search", d.AI.Search)
	}

	// ───────────────────────── LOGGED IN ─────────────────────────
	user := r.Group("/api")
	user.Use(middleware.RequireSession())
	{
		user.GET("/me", d.Auth.Me)
		user.POST("/cart/add", d.Cart.Add)
		user.POST("/order/confirm", d.Order.Confirm)
		user.GET("/orders", d.Order.Mine)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole(auth.RoleAdmin))
	{
		admin.GET("/dashboard", d.Dashboard.Get)
		admin.GET("/users", d.AuthAdmin.ListUsers)
		admin.GET("/bookings", d.Booking.List)
		admin.GET("/orders", d.Order.List)

		admin.GET("/menu", d.MenuAdmin.List)
		admin.POST("/menu/add", d.MenuAdmin.Add)
		admin.DELETE("/menu/:id", d.MenuAdmin.Delete)
		admin.POST("/menu/delete/:id", d.MenuAdmin.Delete)
	}
	r.GET("/dashboard", middleware.RequireRole(auth.RoleAdmin), d.Dashboard.Get)

	return r
}
