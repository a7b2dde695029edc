package main

import (
	"context"
	"time"

	"github.com/stewardly/stewardly/internal/config"
	"github.com/stewardly/stewardly/internal/logger"
	"github.com/stewardly/stewardly/internal/postgres"
	"github.com/stewardly/stewardly/internal/repository"
	"github.com/stewardly/stewardly/internal/s3"
	"github.com/stewardly/stewardly/internal/sentry"
	"github.com/stewardly/stewardly/internal/service"
	"github.com/stewardly/stewardly/internal/temporal"
	"github.com/stewardly/stewardly/internal/types"
	"github.com/stewardly/stewardly/internal/validator"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	// Initialize Fx application
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			sentry.NewSentryService,

			// Postgres
			postgres.NewDB,
			func(db *postgres.DB) postgres.IClient { return db },

			// Object storage
			s3.NewService,

			// Repositories
			repository.NewJobRepository,
			repository.NewInvoiceRepository,
			repository.NewViolationRepository,
			repository.NewChecklistRepository,
			repository.NewInventoryRepository,
			repository.NewSignatureRepository,
			repository.NewNotificationRepository,
			repository.NewReportRepository,
			repository.NewTenantRepository,

			// Temporal
			provideTemporalConfig,
			provideTemporalClient,
			provideTemporalService,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewJobService,
			service.NewInvoiceService,
			service.NewViolationService,
			service.NewChecklistService,
			service.NewInventoryService,
			service.NewSignatureService,
			service.NewNotificationService,
			service.NewReportService,
		),
	)

	opts = append(opts,
		fx.Invoke(
			sentry.RegisterHooks,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideTemporalConfig(cfg *config.Configuration) *config.TemporalConfig {
	return &cfg.Temporal
}

func provideTemporalClient(cfg *config.TemporalConfig, log *logger.Logger) (*temporal.TemporalClient, error) {
	return temporal.NewTemporalClient(cfg, log)
}

func provideTemporalService(temporalClient *temporal.TemporalClient, cfg *config.TemporalConfig, log *logger.Logger) (*temporal.Service, error) {
	return temporal.NewService(temporalClient, cfg, log)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	temporalClient *temporal.TemporalClient,
	temporalService *temporal.Service,
	params service.ServiceParams,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal:
		startTemporalWorker(lc, temporalClient, &cfg.Temporal, params)
		startScheduler(lc, temporalService, log)
	case types.ModeWorker:
		startTemporalWorker(lc, temporalClient, &cfg.Temporal, params)
	case types.ModeScheduler:
		startScheduler(lc, temporalService, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startTemporalWorker(
	lc fx.Lifecycle,
	temporalClient *temporal.TemporalClient,
	cfg *config.TemporalConfig,
	params service.ServiceParams,
) {
	worker := temporal.NewWorker(temporalClient, *cfg, params)
	worker.RegisterWithLifecycle(lc)
}

func startScheduler(
	lc fx.Lifecycle,
	temporalService *temporal.Service,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Registering signature cleanup schedule")
			return temporalService.RegisterSignatureCleanupSchedule(ctx)
		},
		OnStop: func(ctx context.Context) error {
			temporalService.Close()
			return nil
		},
	})
}
