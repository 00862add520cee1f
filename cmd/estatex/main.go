package main

import (
	"context"
	"log/slog"
	"os"

	"estatex/config"
	"estatex/internal/delivery"
	"estatex/internal/delivery/http"
	"estatex/internal/delivery/http/middleware"
	"estatex/internal/delivery/http/router/handler"
	"estatex/internal/domain/repository"
	"estatex/internal/domain/service"
	"estatex/internal/infra/auth"
	"estatex/internal/infra/cache"
	logs "estatex/internal/infra/log"
	"estatex/internal/infra/messaging"
	"estatex/internal/infra/notify"
	"estatex/internal/infra/persistence/postgres"
	"estatex/internal/infra/scheduler"
	"estatex/internal/usecase"
	"estatex/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		scheduler.Module,
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		cache.Module,
		messaging.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAlertRepository,
			postgres.NewPropertyRepository,
			postgres.NewNotificationRepository,
			postgres.NewAnalyticsRepository,
			postgres.NewContactDirectory,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
		),
		notify.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newDispatcher,
			newEvaluationService,
			impl.NewAlertService,
			impl.NewNotificationService,
			impl.NewAnalyticsService,
			newSearchService,
		),
	)
}

// newDispatcher adapts the configured send timeout into the dispatcher.
func newDispatcher(
	senders []service.ChannelSender,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) *impl.Dispatcher {
	return impl.NewDispatcher(senders, publisher, cfg.Alerts.SendTimeout, logger)
}

// newEvaluationService adapts the configured dispatch cap into the orchestrator.
func newEvaluationService(
	alertRepo repository.AlertRepository,
	propertyRepo repository.PropertyRepository,
	notificationRepo repository.NotificationRepository,
	dispatcher *impl.Dispatcher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.EvaluationUsecase {
	return impl.NewEvaluationService(
		alertRepo,
		propertyRepo,
		notificationRepo,
		dispatcher,
		cfg.Alerts.DispatchCap,
		logger,
	)
}

// newSearchService adapts the configured cache TTL into the search service.
func newSearchService(
	propertyRepo repository.PropertyRepository,
	queryCache service.QueryCache,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SearchUsecase {
	ttl := config.DefaultSearchTTL
	if cfg.Redis != nil && cfg.Redis.SearchTTL > 0 {
		ttl = cfg.Redis.SearchTTL
	}

	return impl.NewSearchService(propertyRepo, queryCache, ttl, logger)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAlertHandler,
			handler.NewNotificationHandler,
			handler.NewAnalyticsHandler,
			handler.NewSearchHandler,
			handler.NewWebhookHandler,
			handler.NewCronHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
