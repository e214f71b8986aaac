package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"formapi/docs"
	"formapi/internal/config"
	"formapi/internal/database"
	"formapi/internal/database/migration"
	handlers "formapi/internal/http/handler"
	"formapi/internal/http/middleware"
	"formapi/internal/logging"
	"formapi/internal/otel"
	"formapi/internal/repository/postgres"
	"formapi/internal/service"
	"formapi/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Form Structure API
// @version 1.0
// @description CRUD, search and export of dynamic form structure definitions.
// @BasePath /
func main() {
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.LogLevel, logging.LoadLocation(cfg.Timezone))
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Error().Err(err).Msg("tracing shutdown failed")
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
		logger.Fatal().Err(err).Msg("database migration failed")
	}

	// Export stays disabled (503) when no object storage is configured.
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize object storage")
		}
	} else {
		logger.Warn().Str("component", "storage").Msg("MINIO_ENDPOINT not set, export disabled")
	}

	formRepo := postgres.NewFormStructurePostgres(db)
	formSvc := service.NewFormStructureService(objStore, formRepo, time.Duration(cfg.ExportURLExpirySec)*time.Second)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register metrics")
	}

	app := handlers.NewApp(cfg.BodyLimitBytes)

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(logger))
	app.Use(recover.New())
	app.Use(metrics.Handler())
	app.Use(cors.New())

	handlers.RegisterRoutes(app, db, formSvc)
	app.Get("/metrics", handlers.Metrics(reg))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Msg("server listening")
	if err := app.Listen(addr); err != nil {
		logger.Error().Err(err).Msg("server stopped")
	}
}
