package impl

import (
	"context"
	"testing"
	"time"

	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/repository"
	mockRepo "estatex/internal/mocks/repository"
	mockSvc "estatex/internal/mocks/service"
	mockUC "estatex/internal/mocks/usecase"
	"estatex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAlertService(t *testing.T) (
	usecase.AlertUsecase,
	*mockRepo.MockAlertRepository,
	*mockUC.MockEvaluationUsecase,
) {
	service, alertRepo, _, evaluationUC, _ := createTestAlertServiceFull(t)

	return service, alertRepo, evaluationUC
}

func createTestAlertServiceFull(t *testing.T) (
	usecase.AlertUsecase,
	*mockRepo.MockAlertRepository,
	*mockRepo.MockNotificationRepository,
	*mockUC.MockEvaluationUsecase,
	*mockSvc.MockEventPublisher,
) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	evaluationUC := mockUC.NewMockEvaluationUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	dispatcher := NewDispatcher(nil, publisher, time.Second, testLogger())
	service := NewAlertService(alertRepo, notificationRepo, evaluationUC, dispatcher, testLogger())

	return service, alertRepo, notificationRepo, evaluationUC, publisher
}

func TestAlertService_CreateAlert_Success(t *testing.T) {
	service, alertRepo, evaluationUC := createTestAlertService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateAlertInput{
		Name:         "Rentals in Andheri",
		Frequency:    entity.FrequencyDaily,
		EmailEnabled: true,
		Criteria:     entity.AlertCriteria{Location: "andheri", MaxPrice: 50000},
	}

	var createdID uuid.UUID
	alertRepo.EXPECT().CreateAlert(ctx, mock.Anything).Run(func(_ context.Context, alert *entity.Alert) {
		createdID = alert.ID
		assert.Equal(t, userID, alert.UserID)
		assert.True(t, alert.IsActive, "new alerts start active")
		assert.Zero(t, alert.MatchCount)
		assert.Nil(t, alert.LastTriggeredAt)
	}).Return(nil)

	evaluationUC.EXPECT().EvaluateAlert(ctx, mock.Anything).Return(&usecase.CycleResult{MatchesFound: 2}, nil)

	stored := &entity.Alert{Name: input.Name, MatchCount: 2}
	alertRepo.EXPECT().FindAlertByID(ctx, mock.Anything).Return(stored, nil)

	alert, err := service.CreateAlert(ctx, userID, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, createdID)
	assert.Equal(t, 2, alert.MatchCount, "response reflects the initial evaluation")
}

func TestAlertService_CreateAlert_InvalidFrequency(t *testing.T) {
	service, _, _ := createTestAlertService(t)

	_, err := service.CreateAlert(context.Background(), uuid.New(), &usecase.CreateAlertInput{
		Name:      "Bad",
		Frequency: entity.Frequency("monthly"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCriteria))
}

func TestAlertService_CreateAlert_EvaluationFailureIsNotFatal(t *testing.T) {
	service, alertRepo, evaluationUC := createTestAlertService(t)

	ctx := context.Background()
	alertRepo.EXPECT().CreateAlert(ctx, mock.Anything).Return(nil)
	evaluationUC.EXPECT().EvaluateAlert(ctx, mock.Anything).Return(nil, errors.New("db down"))
	alertRepo.EXPECT().FindAlertByID(ctx, mock.Anything).Return(nil, errors.New("db down"))

	alert, err := service.CreateAlert(ctx, uuid.New(), &usecase.CreateAlertInput{
		Name:      "Resales",
		Frequency: entity.FrequencyWeekly,
	})

	require.NoError(t, err, "the alert is stored; evaluation catches up next cycle")
	assert.NotNil(t, alert)
}

func TestAlertService_GetAlert_OwnershipEnforced(t *testing.T) {
	service, alertRepo, _ := createTestAlertService(t)

	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()
	alert := testAlert()
	alert.UserID = owner

	alertRepo.EXPECT().FindAlertByID(ctx, alert.ID).Return(alert, nil)

	_, err := service.GetAlert(ctx, stranger, alert.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlertNotOwned))
}

func TestAlertService_GetAlert_NotFound(t *testing.T) {
	service, alertRepo, _ := createTestAlertService(t)

	ctx := context.Background()
	alertID := uuid.New()
	alertRepo.EXPECT().FindAlertByID(ctx, alertID).Return(nil, repository.ErrAlertNotFound)

	_, err := service.GetAlert(ctx, uuid.New(), alertID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlertNotFound))
}

func TestAlertService_UpdateAlert_PartialUpdate(t *testing.T) {
	service, alertRepo, _ := createTestAlertService(t)

	ctx := context.Background()
	alert := testAlert()
	alert.MatchCount = 12
	newName := "Bigger flats"
	newCriteria := entity.AlertCriteria{MinArea: 1200}

	alertRepo.EXPECT().FindAlertByID(ctx, alert.ID).Return(alert, nil)
	alertRepo.EXPECT().UpdateAlert(ctx, mock.Anything).Return(nil)

	updated, err := service.UpdateAlert(ctx, alert.UserID, alert.ID, &usecase.UpdateAlertInput{
		Name:     &newName,
		Criteria: &newCriteria,
	})

	require.NoError(t, err)
	assert.Equal(t, "Bigger flats", updated.Name)
	assert.Equal(t, newCriteria, updated.Criteria)
	assert.Equal(t, 12, updated.MatchCount, "criteria edits keep the running match count")
	assert.Equal(t, entity.FrequencyInstant, updated.Frequency, "untouched fields survive")
}

func TestAlertService_UpdateAlert_RejectsUnknownFrequency(t *testing.T) {
	service, alertRepo, _ := createTestAlertService(t)

	ctx := context.Background()
	alert := testAlert()
	bad := entity.Frequency("hourly")

	alertRepo.EXPECT().FindAlertByID(ctx, alert.ID).Return(alert, nil)

	_, err := service.UpdateAlert(ctx, alert.UserID, alert.ID, &usecase.UpdateAlertInput{Frequency: &bad})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCriteria))
}

func TestAlertService_SetAlertActive_Toggle(t *testing.T) {
	service, alertRepo, _ := createTestAlertService(t)

	ctx := context.Background()
	alert := testAlert()

	alertRepo.EXPECT().FindAlertByID(ctx, alert.ID).Return(alert, nil)
	alertRepo.EXPECT().UpdateAlertStatus(ctx, alert.ID, false).Return(nil)

	updated, err := service.SetAlertActive(ctx, alert.UserID, alert.ID, false)

	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestAlertService_SetAlertActive_NoopWhenUnchanged(t *testing.T) {
	service, alertRepo, _ := createTestAlertService(t)

	ctx := context.Background()
	alert := testAlert()

	alertRepo.EXPECT().FindAlertByID(ctx, alert.ID).Return(alert, nil)

	updated, err := service.SetAlertActive(ctx, alert.UserID, alert.ID, true)

	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestAlertService_DeleteAlert_Success(t *testing.T) {
	service, alertRepo, _ := createTestAlertService(t)

	ctx := context.Background()
	alert := testAlert()

	alertRepo.EXPECT().FindAlertByID(ctx, alert.ID).Return(alert, nil)
	alertRepo.EXPECT().DeleteAlert(ctx, alert.ID).Return(nil)

	require.NoError(t, service.DeleteAlert(ctx, alert.UserID, alert.ID))
}

func TestAlertService_ListAlerts(t *testing.T) {
	service, alertRepo, _ := createTestAlertService(t)

	ctx := context.Background()
	userID := uuid.New()
	alertRepo.EXPECT().FindAlertsByUser(ctx, userID).Return([]*entity.Alert{testAlert(), testAlert()}, nil)

	alerts, err := service.ListAlerts(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, alerts, 2)
}

func TestAlertService_SendTestNotification_Success(t *testing.T) {
	service, alertRepo, notificationRepo, _, publisher := createTestAlertServiceFull(t)

	ctx := context.Background()
	alert := testAlert()

	alertRepo.EXPECT().FindAlertByID(ctx, alert.ID).Return(alert, nil)
	publisher.EXPECT().PublishMatchEvent(mock.Anything, mock.Anything).Return(nil)
	notificationRepo.EXPECT().BatchCreateNotificationEvents(ctx, mock.MatchedBy(func(events []*entity.NotificationEvent) bool {
		return len(events) == 1 && events[0].AlertID == alert.ID
	})).Return(nil)

	event, err := service.SendTestNotification(ctx, alert.UserID, alert.ID)

	require.NoError(t, err)
	assert.Equal(t, alert.UserID, event.UserID)
	assert.Contains(t, event.Channels, entity.ChannelEmail, "the enabled channels are attempted")
	assert.Equal(t, "Beautiful 2BHK Test Property", event.PropertyTitle)
}

func TestAlertService_SendTestNotification_NotOwned(t *testing.T) {
	service, alertRepo, notificationRepo, _, _ := createTestAlertServiceFull(t)

	ctx := context.Background()
	alert := testAlert()

	alertRepo.EXPECT().FindAlertByID(ctx, alert.ID).Return(alert, nil)

	_, err := service.SendTestNotification(ctx, uuid.New(), alert.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlertNotOwned))
	notificationRepo.AssertNotCalled(t, "BatchCreateNotificationEvents")
}
