package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"estatex/internal/domain/entity"
	mockRepo "estatex/internal/mocks/repository"
	mockSvc "estatex/internal/mocks/service"
	"estatex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testDispatchCap = 5

func createTestEvaluationService(t *testing.T) (
	usecase.EvaluationUsecase,
	*mockRepo.MockAlertRepository,
	*mockRepo.MockPropertyRepository,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockEventPublisher,
) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	dispatcher := NewDispatcher(nil, publisher, time.Second, testLogger())
	service := NewEvaluationService(alertRepo, propertyRepo, notificationRepo, dispatcher, testDispatchCap, testLogger())

	return service, alertRepo, propertyRepo, notificationRepo, publisher
}

func makeProperties(n int) []*entity.Property {
	properties := make([]*entity.Property, 0, n)
	for i := 0; i < n; i++ {
		property := testProperty()
		property.ID = uuid.New()
		properties = append(properties, property)
	}

	return properties
}

func TestEvaluationService_Evaluate_CapsDispatchButCountsAllMatches(t *testing.T) {
	service, _, _, _, publisher := createTestEvaluationService(t)
	publisher.EXPECT().PublishMatchEvent(mock.Anything, mock.Anything).Return(nil)

	alert := testAlert()
	alert.EmailEnabled = false // no channels, events go to history only
	properties := makeProperties(7)
	now := time.Now()

	updates, events := service.Evaluate(context.Background(), []*entity.Alert{alert}, properties, now)

	require.Contains(t, updates, alert.ID)
	update := updates[alert.ID]
	assert.Equal(t, 7, update.MatchCountDelta, "matches beyond the cap still accrue")
	require.NotNil(t, update.LastTriggeredAt)
	assert.Equal(t, now, *update.LastTriggeredAt)
	assert.Len(t, events, testDispatchCap)
}

func TestEvaluationService_Evaluate_ThrottledAlertAccruesWithoutDispatch(t *testing.T) {
	service, _, _, _, _ := createTestEvaluationService(t)

	recentTrigger := time.Now().Add(-time.Hour)
	alert := testAlert()
	alert.Frequency = entity.FrequencyDaily
	alert.LastTriggeredAt = &recentTrigger

	updates, events := service.Evaluate(context.Background(), []*entity.Alert{alert}, makeProperties(3), time.Now())

	require.Contains(t, updates, alert.ID)
	update := updates[alert.ID]
	assert.Equal(t, 3, update.MatchCountDelta)
	assert.Nil(t, update.LastTriggeredAt, "a throttled alert keeps its stored trigger time")
	assert.Empty(t, events)
}

func TestEvaluationService_Evaluate_UnknownFrequencyWarnsAndGates(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	publisher := mockSvc.NewMockEventPublisher(t)
	dispatcher := NewDispatcher(nil, publisher, time.Second, logger)
	service := NewEvaluationService(
		mockRepo.NewMockAlertRepository(t),
		mockRepo.NewMockPropertyRepository(t),
		mockRepo.NewMockNotificationRepository(t),
		dispatcher, testDispatchCap, logger)

	longAgo := time.Now().Add(-90 * 24 * time.Hour)
	alert := testAlert()
	alert.Frequency = entity.Frequency("hourly")
	alert.LastTriggeredAt = &longAgo

	updates, events := service.Evaluate(context.Background(), []*entity.Alert{alert}, makeProperties(2), time.Now())

	require.Contains(t, updates, alert.ID)
	assert.Equal(t, 2, updates[alert.ID].MatchCountDelta, "matches still accrue")
	assert.Empty(t, events, "an unknown frequency never dispatches once the alert has fired")
	assert.Contains(t, logBuf.String(), "unknown alert frequency")
}

func TestEvaluationService_Evaluate_SkipsInactiveAlerts(t *testing.T) {
	service, _, _, _, _ := createTestEvaluationService(t)

	alert := testAlert()
	alert.IsActive = false

	updates, events := service.Evaluate(context.Background(), []*entity.Alert{alert}, makeProperties(2), time.Now())

	assert.Empty(t, updates)
	assert.Empty(t, events)
}

func TestEvaluationService_Evaluate_SkipsUnapprovedProperties(t *testing.T) {
	service, _, _, _, publisher := createTestEvaluationService(t)
	publisher.EXPECT().PublishMatchEvent(mock.Anything, mock.Anything).Return(nil)

	alert := testAlert()
	alert.EmailEnabled = false
	properties := makeProperties(2)
	properties[0].Approved = false

	updates, events := service.Evaluate(context.Background(), []*entity.Alert{alert}, properties, time.Now())

	require.Contains(t, updates, alert.ID)
	assert.Equal(t, 1, updates[alert.ID].MatchCountDelta)
	assert.Len(t, events, 1)
}

func TestEvaluationService_Evaluate_NoMatchesLeavesAlertUntouched(t *testing.T) {
	service, _, _, _, _ := createTestEvaluationService(t)

	alert := testAlert()
	alert.Criteria.Location = "bandra"

	updates, events := service.Evaluate(context.Background(), []*entity.Alert{alert}, makeProperties(3), time.Now())

	assert.Empty(t, updates, "an alert with zero matches gets no update entry")
	assert.Empty(t, events)
}

func TestEvaluationService_RunCycle_PersistsUpdatesAndEvents(t *testing.T) {
	service, alertRepo, propertyRepo, notificationRepo, publisher := createTestEvaluationService(t)

	ctx := context.Background()
	since := time.Now().Add(-time.Hour)
	alert := testAlert()
	alert.EmailEnabled = false
	properties := makeProperties(2)

	alertRepo.EXPECT().FindActiveAlerts(ctx).Return([]*entity.Alert{alert}, nil)
	propertyRepo.EXPECT().FindCandidatesSince(ctx, since).Return(properties, nil)
	alertRepo.EXPECT().ApplyEvaluation(ctx, alert.ID, 2, mock.Anything).Return(nil)
	notificationRepo.EXPECT().BatchCreateNotificationEvents(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(nil)

	result, err := service.RunCycle(ctx, since)

	require.NoError(t, err)
	assert.Equal(t, 1, result.AlertsEvaluated)
	assert.Equal(t, 2, result.PropertiesScanned)
	assert.Equal(t, 2, result.MatchesFound)
	assert.Equal(t, 2, result.EventsDispatched)
	assert.Equal(t, 0, result.AlertsThrottled)
}

func TestEvaluationService_RunCycle_EmptyCycleIsIdempotent(t *testing.T) {
	service, alertRepo, propertyRepo, _, _ := createTestEvaluationService(t)

	ctx := context.Background()
	since := time.Now().Add(-time.Hour)

	alertRepo.EXPECT().FindActiveAlerts(ctx).Return([]*entity.Alert{testAlert()}, nil)
	propertyRepo.EXPECT().FindCandidatesSince(ctx, since).Return(nil, nil)

	result, err := service.RunCycle(ctx, since)

	require.NoError(t, err)
	assert.Zero(t, result.MatchesFound)
	assert.Zero(t, result.EventsDispatched)
}

func TestEvaluationService_RunCycle_AlertLoadFailure(t *testing.T) {
	service, alertRepo, _, _, _ := createTestEvaluationService(t)

	ctx := context.Background()
	alertRepo.EXPECT().FindActiveAlerts(ctx).Return(nil, errors.New("connection reset"))

	result, err := service.RunCycle(ctx, time.Now())

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestEvaluationService_EvaluateProperty_MatchesAgainstActiveAlerts(t *testing.T) {
	service, alertRepo, _, notificationRepo, publisher := createTestEvaluationService(t)

	ctx := context.Background()
	matching := testAlert()
	matching.EmailEnabled = false
	nonMatching := testAlert()
	nonMatching.Criteria.Location = "bandra"
	property := testProperty()
	property.ID = uuid.New()

	alertRepo.EXPECT().FindActiveAlerts(ctx).Return([]*entity.Alert{matching, nonMatching}, nil)
	alertRepo.EXPECT().ApplyEvaluation(ctx, matching.ID, 1, mock.Anything).Return(nil)
	notificationRepo.EXPECT().BatchCreateNotificationEvents(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(nil)

	result, err := service.EvaluateProperty(ctx, property)

	require.NoError(t, err)
	assert.Equal(t, 1, result.MatchesFound)
	assert.Equal(t, 1, result.EventsDispatched)
}

func TestEvaluationService_EvaluateAlert_UsesApprovedInventory(t *testing.T) {
	service, alertRepo, propertyRepo, notificationRepo, publisher := createTestEvaluationService(t)

	ctx := context.Background()
	alert := testAlert()
	alert.EmailEnabled = false

	propertyRepo.EXPECT().FindApproved(ctx).Return(makeProperties(2), nil)
	alertRepo.EXPECT().ApplyEvaluation(ctx, alert.ID, 2, mock.Anything).Return(nil)
	notificationRepo.EXPECT().BatchCreateNotificationEvents(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(nil)

	result, err := service.EvaluateAlert(ctx, alert)

	require.NoError(t, err)
	assert.Equal(t, 2, result.MatchesFound)
}
