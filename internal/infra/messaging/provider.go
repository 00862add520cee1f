// Package messaging publishes match events to a message stream for async
// consumers.
package messaging

import (
	"context"
	"log/slog"

	"estatex/config"
	"estatex/internal/domain/service"

	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when streaming is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishMatchEvent(_ context.Context, event *service.MatchEvent) error {
	p.logger.Debug("[NoopStream] Event publishing disabled, skipping",
		slog.String("alert_id", event.AlertID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.NATS
	logger := params.Logger

	// If NATS is not configured, return a no-op publisher
	if cfg == nil || cfg.URL == "" {
		logger.Info("NATS not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	logger.Info("Using NATS JetStream publisher",
		slog.String("url", cfg.URL),
		slog.String("stream", cfg.Stream),
		slog.String("subject", cfg.Subject),
	)

	publisher, err := NewNATSPublisher(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the messaging FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
