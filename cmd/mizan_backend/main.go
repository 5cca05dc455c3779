package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/mizanapp/mizan_backend/cmd/docs"
	portsrepo "github.com/mizanapp/mizan_backend/internal/core/ports/repositories"
	"github.com/mizanapp/mizan_backend/internal/core/services"
	"github.com/mizanapp/mizan_backend/internal/handlers"
	"github.com/mizanapp/mizan_backend/internal/middleware"
	"github.com/mizanapp/mizan_backend/internal/platform/config"
	"github.com/mizanapp/mizan_backend/internal/platform/database"
	"github.com/mizanapp/mizan_backend/internal/repositories/database/pgsql"
	"github.com/mizanapp/mizan_backend/internal/repositories/memory"
	"github.com/mizanapp/mizan_backend/internal/telegram"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Mizan Backend API
// @version 1.0
// @description Multi-tenant double-entry bookkeeping backend.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Storage backend: PostgreSQL when PGSQL_URL is set, in-memory otherwise.
	var repos portsrepo.RepositoryProvider
	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer dbPool.Close()
		logger.Info("Database connection pool established.")

		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			os.Exit(1)
		}

		repos = pgsql.NewRepositoryProvider(dbPool)
	} else {
		logger.Warn("PGSQL_URL not set, using in-memory storage. All data is lost on restart.")
		repos = memory.NewRepositoryProvider(memory.NewStore())
	}

	serviceContainer := services.NewServiceContainer(repos, cfg.JWTSecret, cfg.JWTExpiryDuration)

	var tgClient *telegram.Client
	if cfg.TelegramBotToken != "" {
		tgClient = telegram.NewClient(cfg.TelegramBotToken)
		if cfg.WebhookURL != "" {
			webhookURL := cfg.WebhookURL + "/telegram/webhook/" + cfg.TelegramBotToken
			if err := tgClient.SetWebhook(context.Background(), webhookURL); err != nil {
				logger.Error("Failed to register telegram webhook", slog.String("error", err.Error()))
			} else {
				logger.Info("Telegram webhook registered")
			}
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Rate limit for the public auth and webhook surfaces.
	rate, err := limiter.NewRateFromFormatted("20-M")
	if err != nil {
		logger.Error("Failed to parse rate limit", slog.String("error", err.Error()))
		os.Exit(1)
	}
	authLimiter := limiter.New(limitermem.NewStore(), rate)

	handlers.RegisterRoutes(r, cfg, serviceContainer, tgClient, authLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending up migrations from the migrations
// directory over a temporary database/sql connection.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
