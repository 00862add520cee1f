package service

import (
	"context"

	"estatex/internal/domain/entity"
)

// MatchEvent is the message published after an evaluation cycle for
// downstream consumers (audit trail, external integrations). It carries the
// same denormalized snapshot as the stored notification event.
type MatchEvent struct {
	RequestID string                    `json:"request_id,omitempty"` // For distributed tracing.
	AlertID   string                    `json:"alert_id"`
	UserID    string                    `json:"user_id"`
	Event     *entity.NotificationEvent `json:"event"`
}

// EventPublisher defines the interface for publishing match events to a
// message stream.
type EventPublisher interface {
	// PublishMatchEvent publishes one match event for async consumption.
	PublishMatchEvent(ctx context.Context, event *MatchEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
