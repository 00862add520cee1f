package usecase

import (
	"context"

	"estatex/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for notification history use cases
type NotificationUsecase interface {
	// GetNotificationHistory retrieves a user's notification events with
	// pagination, newest first, along with the total count
	GetNotificationHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.NotificationEvent, int64, error)

	// GetAlertHistory retrieves the notification events dispatched for a
	// single alert, newest first. The alert must belong to the caller.
	GetAlertHistory(ctx context.Context, userID, alertID uuid.UUID) ([]*entity.NotificationEvent, error)

	// MarkNotificationRead marks a single event as read for its owner
	MarkNotificationRead(ctx context.Context, userID, eventID uuid.UUID) error
}
