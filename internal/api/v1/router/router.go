package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "backoffice/docs"
	"backoffice/internal/api/v1/handler"
	"backoffice/internal/config"
	"backoffice/internal/database"
	"backoffice/internal/middleware"
	"backoffice/internal/pgmq"
	"backoffice/internal/pubsub"
	"backoffice/internal/repository"
	"backoffice/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New wires the HTTP API. The returned pool and publisher are owned by the
// caller; publisher is nil when Pub/Sub is not configured.
func New(ctx context.Context, cfg *config.Config, jwtSecret string, logger zerolog.Logger) (http.Handler, *pgxpool.Pool, *pubsub.PubSubPublisher, error) {
	logger.Info().Str("environment", cfg.Environment).Msg("Router initializing")

	authMiddleware, err := newAuthMiddleware(cfg, jwtSecret, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	// 1. Database pool. Non-development deployments sit behind a transaction
	// pooler and must use the simple query protocol.
	pool, err := database.New(ctx, cfg.DBConnectionString, database.Options{
		MaxConns:       cfg.DBMaxConns,
		SimpleProtocol: !cfg.IsDevelopment(),
	})
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	if cfg.RunMigrations {
		if err := database.RunMigrations(ctx, pool, cfg.MigrationsDir, logger); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
	}

	// 2. Dashboard options
	dashOpts, err := service.DashboardOptionsFromConfig(cfg)
	if err != nil {
		pool.Close()
		return nil, nil, nil, err
	}
	if dashOpts.CategoryMatchMode == service.MatchNormalized {
		logger.Warn().Msg("Category usage uses normalized matching (trim + case-fold); counts may differ from exact matching")
	}

	// 3. Optional snapshot infrastructure. Interfaces stay nil when disabled.
	var (
		store     service.ObjectStore
		queue     pgmq.Queue
		publisher pubsub.Publisher
		psClient  *pubsub.PubSubPublisher
	)
	if cfg.SnapshotsEnabled() {
		s, err := service.NewS3ObjectStoreFromConfig(ctx, cfg)
		if err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		store = s
		queue = pgmq.New(pool)
	} else {
		logger.Info().Msg("Snapshot export disabled: S3 is not configured")
	}
	if cfg.GCPProjectID != "" {
		p, err := pubsub.NewPublisher(ctx, cfg)
		if err != nil {
			logger.Warn().Err(err).Msg("Pub/Sub publisher unavailable; snapshot events will not be published")
		} else {
			psClient, publisher = p, p
		}
	}

	// 4. Validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 5. Repositories & services & handlers
	dashboardRepo := repository.NewDashboardRepo(pool)
	categoryRepo := repository.NewCategoryRepo(pool)
	snapshotRepo := repository.NewSnapshotRepo(pool)

	dashboardSvc := service.NewDashboardService(dashboardRepo, categoryRepo, dashOpts, logger)
	categorySvc := service.NewCategoryService(categoryRepo)
	snapshotSvc := service.NewSnapshotService(snapshotRepo, dashboardSvc, queue, store, publisher, service.SnapshotOptions{
		QueueName: cfg.SnapshotQueueName,
		Topic:     cfg.SnapshotTopic,
		URLExpiry: time.Duration(cfg.SnapshotURLExpiryMin) * time.Minute,
	}, logger)

	dashboardHandler := handler.NewDashboardHandler(dashboardSvc, validate, logger)
	categoryHandler := handler.NewCategoryHandler(categorySvc, validate, logger)
	snapshotHandler := handler.NewSnapshotHandler(snapshotSvc, validate, logger)
	healthHandler := handler.NewHealthHandler(pool, logger)
	docsHandler := handler.NewDocsHandler(logger)

	// 6. Routes
	mux := http.NewServeMux()
	healthHandler.RegisterRoutes(mux)
	docsHandler.RegisterRoutes(mux)
	dashboardHandler.RegisterRoutes(mux, authMiddleware)
	categoryHandler.RegisterRoutes(mux, authMiddleware)
	snapshotHandler.RegisterRoutes(mux, authMiddleware)

	// 7. CORS, request id, request logging
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Location"},
		AllowCredentials: true,
	})

	h := c.Handler(middleware.RequestID(logger)(middleware.LoggerMiddleware(logger)(mux)))
	logger.Info().Msg("Router initialized")
	return h, pool, psClient, nil
}

func newAuthMiddleware(cfg *config.Config, jwtSecret string, logger zerolog.Logger) (func(http.Handler) http.Handler, error) {
	if !cfg.DashboardRequireAuth {
		logger.Warn().Msg("Dashboard authentication disabled by DASHBOARD_REQUIRE_AUTH=false")
		return middleware.Passthrough, nil
	}
	if jwtSecret == "" {
		return nil, fmt.Errorf("dashboard authentication requires a JWT secret")
	}
	return middleware.AuthMiddleware(jwtSecret, logger), nil
}
