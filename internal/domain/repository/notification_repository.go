// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"estatex/internal/domain/entity"
	"estatex/internal/errors"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification event is not found.
var ErrNotificationNotFound = errors.New("notification event not found")

// NotificationRepository defines the interface for notification-history
// database operations.
type NotificationRepository interface {
	// BatchCreateNotificationEvents persists the events produced by one
	// evaluation cycle in a batch.
	BatchCreateNotificationEvents(ctx context.Context, events []*entity.NotificationEvent) error

	// FindEventsByUser retrieves a user's notification history, newest first.
	FindEventsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.NotificationEvent, error)

	// CountEventsByUser returns the total number of events for a user.
	CountEventsByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkEventRead sets the read flag on a single event.
	MarkEventRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error

	// FindEventsByAlert retrieves the history of a single alert, newest
	// first. Deleting an alert cascades over this history inside the
	// alert repository's transaction.
	FindEventsByAlert(ctx context.Context, alertID uuid.UUID) ([]*entity.NotificationEvent, error)
}
