package impl

import (
	"context"

	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/repository"
	"estatex/internal/errors"
	"estatex/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	alertRepo        repository.AlertRepository
}

// NewNotificationService creates a new notification history service instance
func NewNotificationService(notificationRepo repository.NotificationRepository, alertRepo repository.AlertRepository) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		alertRepo:        alertRepo,
	}
}

// GetNotificationHistory retrieves a page of the user's notification events,
// newest first, along with the total count for pagination.
func (s *notificationService) GetNotificationHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.NotificationEvent, int64, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	events, err := s.notificationRepo.FindEventsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, errors.Wrap(err, "find notification events")
	}

	total, err := s.notificationRepo.CountEventsByUser(ctx, userID)
	if err != nil {
		return nil, 0, errors.Wrap(err, "count notification events")
	}

	return events, total, nil
}

// GetAlertHistory retrieves the events dispatched for one alert, newest
// first. Ownership is checked against the alert itself so a deleted alert
// and a foreign alert report different errors.
func (s *notificationService) GetAlertHistory(ctx context.Context, userID, alertID uuid.UUID) ([]*entity.NotificationEvent, error) {
	alert, err := s.alertRepo.FindAlertByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, domainerrors.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "find alert")
	}

	if alert.UserID != userID {
		return nil, domainerrors.ErrAlertNotOwned
	}

	events, err := s.notificationRepo.FindEventsByAlert(ctx, alertID)
	if err != nil {
		return nil, errors.Wrap(err, "find alert events")
	}

	return events, nil
}

// MarkNotificationRead flags one event as read. The repository scopes the
// update by owner, so marking another user's event reports not-found.
func (s *notificationService) MarkNotificationRead(ctx context.Context, userID, eventID uuid.UUID) error {
	if err := s.notificationRepo.MarkEventRead(ctx, eventID, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "mark notification read")
	}

	return nil
}
