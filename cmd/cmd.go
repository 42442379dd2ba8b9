package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"daily-diet-api/internal/config"
	"daily-diet-api/internal/repository"
	"daily-diet-api/internal/repository/sqlite"
	"daily-diet-api/internal/router"
	"daily-diet-api/internal/services"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Run starts the HTTP server and blocks until SIGINT or SIGTERM
func Run() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Connect to database and initialize repositories
	st, err := openStores(context.Background(), cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("Failed to open database")
	}
	defer st.close()
	log.Info().Str("driver", cfg.Database.Driver).Msg("Database connection established")

	// Initialize services
	userService := services.NewUserService(st.users)
	mealService := services.NewMealService(st.meals)

	handler := router.New(router.Dependencies{
		UserService: userService,
		MealService: mealService,
		Ping:        st.ping,
		Session:     cfg.Session,
		Metrics:     cfg.Metrics,
		AccessLog:   true,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

type storeSet struct {
	users services.UserStore
	meals services.MealStore
	ping  func(ctx context.Context) error
	close func()
}

// openStores connects the configured backend
func openStores(ctx context.Context, cfg config.DatabaseConfig) (*storeSet, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return &storeSet{
			users: sqlite.NewUserRepository(db),
			meals: sqlite.NewMealRepository(db),
			ping:  db.PingContext,
			close: func() { db.Close() },
		}, nil
	default:
		db, err := repository.Connect(ctx, cfg.DSN())
		if err != nil {
			return nil, err
		}
		if err := repository.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return &storeSet{
			users: repository.NewUserRepository(db),
			meals: repository.NewMealRepository(db),
			ping:  db.Ping,
			close: db.Close,
		}, nil
	}
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
