package postgres

import (
	"context"
	"strings"

	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/repository"
	"estatex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// BatchCreateNotificationEvents persists one cycle's events in a batch.
func (repo *notificationRepository) BatchCreateNotificationEvents(ctx context.Context, events []*entity.NotificationEvent) error {
	if len(events) == 0 {
		return nil
	}

	eventModels := make([]*model.NotificationEventModel, 0, len(events))
	for _, event := range events {
		eventModels = append(eventModels, fromNotificationEventDomain(event))
	}

	if err := repo.db.WithContext(ctx).Create(&eventModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notification events")
	}

	return nil
}

// FindEventsByUser retrieves a user's notification history with pagination, newest first.
func (repo *notificationRepository) FindEventsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.NotificationEvent, error) {
	var eventModels []*model.NotificationEventModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sent_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification events by user")
	}

	return toNotificationEventDomainList(eventModels), nil
}

// CountEventsByUser returns the total number of events for a user.
func (repo *notificationRepository) CountEventsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationEventModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count notification events by user")
	}

	return count, nil
}

// MarkEventRead sets the read flag on a single event, scoped by owner.
func (repo *notificationRepository) MarkEventRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationEventModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification event read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// FindEventsByAlert retrieves the history of a single alert, newest first.
func (repo *notificationRepository) FindEventsByAlert(ctx context.Context, alertID uuid.UUID) ([]*entity.NotificationEvent, error) {
	var eventModels []*model.NotificationEventModel

	if err := repo.db.WithContext(ctx).
		Where("alert_id = ?", alertID).
		Order("sent_at DESC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification events by alert")
	}

	return toNotificationEventDomainList(eventModels), nil
}

// fromNotificationEventDomain maps a domain entity to its GORM model.
func fromNotificationEventDomain(event *entity.NotificationEvent) *model.NotificationEventModel {
	channels := make([]string, 0, len(event.Channels))
	for _, channel := range event.Channels {
		channels = append(channels, string(channel))
	}

	return &model.NotificationEventModel{
		ID:               event.ID,
		AlertID:          event.AlertID,
		UserID:           event.UserID,
		AlertName:        event.AlertName,
		PropertyID:       event.PropertyID,
		PropertyTitle:    event.PropertyTitle,
		PropertyLocation: event.PropertyLocation,
		PropertyPrice:    event.PropertyPrice,
		PropertyType:     event.PropertyType,
		MatchReason:      event.MatchReason,
		Channels:         strings.Join(channels, ","),
		Status:           string(event.Status),
		SentAt:           event.SentAt,
		IsRead:           event.IsRead,
	}
}

// toNotificationEventDomain maps a GORM model back to the domain entity.
func toNotificationEventDomain(eventM *model.NotificationEventModel) *entity.NotificationEvent {
	var channels []entity.Channel
	for _, channel := range strings.Split(eventM.Channels, ",") {
		if channel = strings.TrimSpace(channel); channel != "" {
			channels = append(channels, entity.Channel(channel))
		}
	}

	return &entity.NotificationEvent{
		ID:               eventM.ID,
		AlertID:          eventM.AlertID,
		UserID:           eventM.UserID,
		AlertName:        eventM.AlertName,
		PropertyID:       eventM.PropertyID,
		PropertyTitle:    eventM.PropertyTitle,
		PropertyLocation: eventM.PropertyLocation,
		PropertyPrice:    eventM.PropertyPrice,
		PropertyType:     eventM.PropertyType,
		MatchReason:      eventM.MatchReason,
		Channels:         channels,
		Status:           entity.DeliveryStatus(eventM.Status),
		SentAt:           eventM.SentAt,
		IsRead:           eventM.IsRead,
	}
}

func toNotificationEventDomainList(eventModels []*model.NotificationEventModel) []*entity.NotificationEvent {
	events := make([]*entity.NotificationEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toNotificationEventDomain(eventM))
	}

	return events
}
