package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"estatex/config"
	"estatex/internal/domain/service"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/pkg/errors"
)

const (
	reconnectWait = 2 * time.Second
	streamMaxAge  = 7 * 24 * time.Hour
	streamMaxMsgs = 50_000
	setupTimeout  = 10 * time.Second
)

// natsPublisher publishes match events to a NATS JetStream stream.
type natsPublisher struct {
	conn      *nats.Conn
	jetStream jetstream.JetStream
	subject   string
	logger    *slog.Logger
}

// NewNATSPublisher connects to NATS, ensures the configured stream exists and
// returns a publisher bound to the configured subject.
func NewNATSPublisher(cfg *config.NATSConfig, logger *slog.Logger) (service.EventPublisher, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.ReconnectWait(reconnectWait),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("NATS connection lost", slog.Any("error", err))
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to NATS")
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()

		return nil, errors.Wrap(err, "failed to create JetStream context")
	}

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      cfg.Stream,
		Subjects:  []string{cfg.Subject},
		Retention: jetstream.LimitsPolicy,
		MaxMsgs:   streamMaxMsgs,
		MaxAge:    streamMaxAge,
	})
	if err != nil {
		nc.Close()

		return nil, errors.Wrapf(err, "failed to ensure stream %s", cfg.Stream)
	}

	return &natsPublisher{
		conn:      nc,
		jetStream: js,
		subject:   cfg.Subject,
		logger:    logger,
	}, nil
}

func (p *natsPublisher) PublishMatchEvent(ctx context.Context, event *service.MatchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal match event")
	}

	if _, err := p.jetStream.Publish(ctx, p.subject, payload); err != nil {
		return errors.Wrapf(err, "failed to publish to %s", p.subject)
	}

	p.logger.Debug("Published match event",
		slog.String("subject", p.subject),
		slog.String("alert_id", event.AlertID),
		slog.Int("bytes", len(payload)),
	)

	return nil
}

func (p *natsPublisher) Close() error {
	if p.conn != nil {
		p.conn.Close()
	}

	return nil
}
