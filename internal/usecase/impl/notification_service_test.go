package impl

import (
	"context"
	"testing"

	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/repository"
	mockRepo "estatex/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_GetNotificationHistory_Success(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(notificationRepo, mockRepo.NewMockAlertRepository(t))

	ctx := context.Background()
	userID := uuid.New()
	events := []*entity.NotificationEvent{{ID: uuid.New()}, {ID: uuid.New()}}

	notificationRepo.EXPECT().FindEventsByUser(ctx, userID, 10, 0).Return(events, nil)
	notificationRepo.EXPECT().CountEventsByUser(ctx, userID).Return(int64(42), nil)

	got, total, err := service.GetNotificationHistory(ctx, userID, 10, 0)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(42), total)
}

func TestNotificationService_GetNotificationHistory_ClampsPagination(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(notificationRepo, mockRepo.NewMockAlertRepository(t))

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().FindEventsByUser(ctx, userID, defaultHistoryLimit, 0).Return(nil, nil)
	notificationRepo.EXPECT().CountEventsByUser(ctx, userID).Return(int64(0), nil)

	_, _, err := service.GetNotificationHistory(ctx, userID, 0, -5)
	require.NoError(t, err)

	notificationRepo.EXPECT().FindEventsByUser(ctx, userID, maxHistoryLimit, 0).Return(nil, nil)
	notificationRepo.EXPECT().CountEventsByUser(ctx, userID).Return(int64(0), nil)

	_, _, err = service.GetNotificationHistory(ctx, userID, 5000, 0)
	require.NoError(t, err)
}

func TestNotificationService_GetAlertHistory_Success(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	alertRepo := mockRepo.NewMockAlertRepository(t)
	service := NewNotificationService(notificationRepo, alertRepo)

	ctx := context.Background()
	userID := uuid.New()
	alertID := uuid.New()
	events := []*entity.NotificationEvent{{ID: uuid.New(), AlertID: alertID}}

	alertRepo.EXPECT().FindAlertByID(ctx, alertID).Return(&entity.Alert{ID: alertID, UserID: userID}, nil)
	notificationRepo.EXPECT().FindEventsByAlert(ctx, alertID).Return(events, nil)

	got, err := service.GetAlertHistory(ctx, userID, alertID)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestNotificationService_GetAlertHistory_NotOwned(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	alertRepo := mockRepo.NewMockAlertRepository(t)
	service := NewNotificationService(notificationRepo, alertRepo)

	ctx := context.Background()
	alertID := uuid.New()

	alertRepo.EXPECT().FindAlertByID(ctx, alertID).Return(&entity.Alert{ID: alertID, UserID: uuid.New()}, nil)

	_, err := service.GetAlertHistory(ctx, uuid.New(), alertID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlertNotOwned))
	notificationRepo.AssertNotCalled(t, "FindEventsByAlert")
}

func TestNotificationService_GetAlertHistory_NotFound(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	alertRepo := mockRepo.NewMockAlertRepository(t)
	service := NewNotificationService(notificationRepo, alertRepo)

	ctx := context.Background()
	alertID := uuid.New()

	alertRepo.EXPECT().FindAlertByID(ctx, alertID).Return(nil, repository.ErrAlertNotFound)

	_, err := service.GetAlertHistory(ctx, uuid.New(), alertID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlertNotFound))
}

func TestNotificationService_MarkNotificationRead_NotFound(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(notificationRepo, mockRepo.NewMockAlertRepository(t))

	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()

	notificationRepo.EXPECT().MarkEventRead(ctx, eventID, userID).Return(repository.ErrNotificationNotFound)

	err := service.MarkNotificationRead(ctx, userID, eventID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}

func TestNotificationService_MarkNotificationRead_Success(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(notificationRepo, mockRepo.NewMockAlertRepository(t))

	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()

	notificationRepo.EXPECT().MarkEventRead(ctx, eventID, userID).Return(nil)

	require.NoError(t, service.MarkNotificationRead(ctx, userID, eventID))
}
