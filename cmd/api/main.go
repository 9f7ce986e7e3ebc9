package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pearl/internal/auth"
	"pearl/internal/booking"
	"pearl/internal/cart"
	"pearl/internal/config"
	"pearl/internal/dashboard"
	"pearl/internal/db"
	"pearl/internal/llm"
	"pearl/internal/logging"
	"pearl/internal/menu"
	"pearl/internal/notify"
	"pearl/internal/order"
	"pearl/internal/router"
	"pearl/internal/session"
	"pearl/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "pearl",
		Short:        "The Pearl restaurant API",
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create database tables",
			RunE:  runMigrate,
		},
		newCreateAdminCommand(),
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// bootstrap loads config and opens the database with the schema in place.
func bootstrap(ctx context.Context) (*config.Config, *logrus.Logger, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format)

	pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := db.InitSchema(ctx, pool, log); err != nil {
		pool.Close()
		return nil, nil, nil, err
	}

	return cfg, log, pool, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	_, log, pool, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer pool.Close()

	log.Info("schema is up to date")
	return nil
}

func newCreateAdminCommand() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, pool, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			service := auth.NewService(auth.NewPostgresUserRepository(pool))
			user, err := service.CreateAdmin(cmd.Context(), username, password)
			if err != nil {
				return errors.Wrap(err, "create admin")
			}

			log.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("admin created")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "admin username")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, log, pool, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ───────────────────────── STORAGE ─────────────────────────
	var images menu.Storage
	if cfg.R2.Enabled() {
		r2Client, err := storage.NewR2Client(ctx, cfg.R2)
		if err != nil {
			return errors.Wrap(err, "R2 init failed")
		}
		images = r2Client
	} else {
		log.Warn("R2 not configured, menu image uploads disabled")
	}

	// ───────────────────────── NOTIFICATIONS ─────────────────────────
	var notifier notify.Notifier = notify.Noop{}
	if cfg.Telegram.Enabled() {
		tg, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.AdminChatID)
		if err != nil {
			log.WithError(err).Warn("telegram disabled")
		} else {
			notifier = tg
		}
	}

	// ───────────────────────── LLM ─────────────────────────
	llmClient, err := newLLMClient(cfg.LLM, log)
	if err != nil {
		return err
	}

	// ───────────────────────── SERVICES ─────────────────────────
	tokens := auth.NewTokens(cfg.JWTSecret)
	sessions := session.NewPostgresStore(pool)

	authService := auth.NewService(auth.NewPostgresUserRepository(pool))
	menuService := menu.NewService(menu.NewPostgresRepository(pool), images)
	cartService := cart.NewService(sessions, menuService)
	bookingService := booking.NewService(booking.NewPostgresRepository(pool), notifier, log)
	orderService := order.NewService(order.NewPostgresRepository(pool), sessions, menuService, notifier, log)

	r := router.NewRouter(router.Deps{
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
		Tokens:      tokens,
		Sessions:    sessions,
		Auth:        auth.NewHandler(authService, sessions, tokens, log, cfg.IsProduction()),
		AuthAdmin:   auth.NewAdminHandler(authService),
		Menu:        menu.NewHandler(menuService),
		MenuAdmin:   menu.NewAdminHandler(menuService, log),
		Cart:        cart.NewHandler(cartService, log),
		Booking:     booking.NewHandler(bookingService),
		Order:       order.NewHandler(orderService, log),
		AI: llm.NewHandler(
			llm.NewDescriber(llmClient, log),
			llm.NewSearcher(llmClient, menuService, log),
		),
		Dashboard: dashboard.NewHandler(dashboard.NewPostgresRepository(pool)),
	})

	// ───────────────────────── START ─────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("API running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLLMClient(cfg config.LLMConfig, log logrus.FieldLogger) (llm.Client, error) {
	switch cfg.Provider {
	case "openai":
		c, err := llm.NewLangChainClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout)
		if err != nil {
			return nil, errors.Wrap(err, "LLM init failed")
		}
		return c, nil
	default:
		if cfg.GeminiAPIKey == "" {
			log.Warn("GEMINI_API_KEY not set, AI features will use fallbacks")
		}
		return llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, cfg.Timeout, log), nil
	}
}
