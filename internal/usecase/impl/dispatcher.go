package impl

import (
	"context"
	"log/slog"
	"time"

	"estatex/internal/domain/entity"
	"estatex/internal/domain/service"

	"github.com/google/uuid"
)

// Dispatcher turns one alert/property match into exactly one notification
// event and fans it out over the alert's enabled channels. Channel failures
// never abort the event: the event records the user's channel preferences,
// and a failed send only downgrades the delivery status.
type Dispatcher struct {
	senders     map[entity.Channel]service.ChannelSender
	publisher   service.EventPublisher
	sendTimeout time.Duration
	logger      *slog.Logger
}

// NewDispatcher creates a dispatcher over the given channel senders.
func NewDispatcher(
	senders []service.ChannelSender,
	publisher service.EventPublisher,
	sendTimeout time.Duration,
	logger *slog.Logger,
) *Dispatcher {
	byChannel := make(map[entity.Channel]service.ChannelSender, len(senders))
	for _, sender := range senders {
		byChannel[sender.Channel()] = sender
	}

	return &Dispatcher{
		senders:     byChannel,
		publisher:   publisher,
		sendTimeout: sendTimeout,
		logger:      logger,
	}
}

// Dispatch builds the notification event for a match and sends it over each
// enabled channel. An alert with no enabled channels still produces an event
// with an empty channel list, so the match shows up in the in-app history.
func (d *Dispatcher) Dispatch(ctx context.Context, alert *entity.Alert, property *entity.Property, now time.Time) *entity.NotificationEvent {
	channels := alert.EnabledChannels()

	event := &entity.NotificationEvent{
		ID:               uuid.New(),
		AlertID:          alert.ID,
		UserID:           alert.UserID,
		AlertName:        alert.Name,
		PropertyID:       property.ID,
		PropertyTitle:    property.Title,
		PropertyLocation: property.Location,
		PropertyPrice:    property.PriceNumeric,
		PropertyType:     property.PropertyType,
		MatchReason:      MatchReason(&alert.Criteria),
		Channels:         channels,
		Status:           entity.StatusSent,
		SentAt:           now,
	}

	failed := 0
	for _, channel := range channels {
		sender, ok := d.senders[channel]
		if !ok {
			d.logger.Warn("no sender registered for channel",
				slog.String("channel", string(channel)),
				slog.String("alert_id", alert.ID.String()))
			failed++

			continue
		}

		if err := d.send(ctx, sender, alert, property); err != nil {
			d.logger.Error("channel send failed",
				slog.String("channel", string(channel)),
				slog.String("alert_id", alert.ID.String()),
				slog.String("property_id", property.ID.String()),
				slog.Any("error", err))
			failed++
		}
	}

	if len(channels) > 0 && failed == len(channels) {
		event.Status = entity.StatusFailed
	}

	d.publish(ctx, event)

	return event
}

func (d *Dispatcher) send(ctx context.Context, sender service.ChannelSender, alert *entity.Alert, property *entity.Property) error {
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	return sender.Send(sendCtx, alert, property)
}

// publish forwards the event to the message bus. Publishing is best-effort;
// a broker outage must not block the evaluation cycle.
func (d *Dispatcher) publish(ctx context.Context, event *entity.NotificationEvent) {
	matchEvent := &service.MatchEvent{
		RequestID: uuid.New().String(),
		AlertID:   event.AlertID.String(),
		UserID:    event.UserID.String(),
		Event:     event,
	}

	if err := d.publisher.PublishMatchEvent(ctx, matchEvent); err != nil {
		d.logger.Error("publish match event failed",
			slog.String("alert_id", event.AlertID.String()),
			slog.Any("error", err))
	}
}
