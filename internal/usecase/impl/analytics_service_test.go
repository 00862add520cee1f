package impl

import (
	"context"
	"testing"
	"time"

	"estatex/internal/domain/entity"
	"estatex/internal/domain/repository"
	mockRepo "estatex/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAnalyticsMocks(repo *mockRepo.MockAnalyticsRepository, ctx context.Context, userID uuid.UUID) {
	repo.EXPECT().CountAlerts(ctx, userID).Return(int64(10), int64(7), nil)
	repo.EXPECT().SumMatchCounts(ctx, userID).Return(int64(123), nil)
	repo.EXPECT().CountEvents(ctx, userID).Return(int64(60), nil)
	repo.EXPECT().CountEventsByChannel(ctx, userID, entity.ChannelEmail).Return(int64(50), nil)
	repo.EXPECT().CountEventsByChannel(ctx, userID, entity.ChannelSMS).Return(int64(20), nil)
	repo.EXPECT().CountEventsByChannel(ctx, userID, entity.ChannelWhatsApp).Return(int64(30), nil)
}

func TestAnalyticsService_BuildReport_Totals(t *testing.T) {
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	service := NewAnalyticsService(analyticsRepo)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	setupAnalyticsMocks(analyticsRepo, ctx, userID)
	analyticsRepo.EXPECT().DailyEventCounts(ctx, userID, mock.Anything).Return(nil, nil)
	analyticsRepo.EXPECT().TopAlertsByMatchCount(ctx, userID, topAlertsLimit).Return(nil, nil)
	analyticsRepo.EXPECT().FrequencyDistribution(ctx, userID).Return(map[entity.Frequency]int64{entity.FrequencyDaily: 6}, nil)

	report, err := service.BuildReport(ctx, userID, now)

	require.NoError(t, err)
	assert.Equal(t, int64(10), report.TotalAlerts)
	assert.Equal(t, int64(7), report.ActiveAlerts)
	assert.Equal(t, int64(123), report.TotalMatches)
	assert.InDelta(t, 12.3, report.AvgMatchesPerAlert, 1e-9)
	assert.Equal(t, int64(60), report.TotalNotifications)
	assert.Equal(t, int64(50), report.Channels.Email)
	assert.Equal(t, int64(20), report.Channels.SMS)
	assert.Equal(t, int64(30), report.Channels.WhatsApp,
		"multi-channel events count once per channel, so channel totals may exceed the event total")
}

func TestAnalyticsService_BuildReport_DailySeriesIsZeroFilled(t *testing.T) {
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	service := NewAnalyticsService(analyticsRepo)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	setupAnalyticsMocks(analyticsRepo, ctx, userID)
	analyticsRepo.EXPECT().DailyEventCounts(ctx, userID, mock.Anything).Return([]repository.DailyEventCount{
		{Day: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), Count: 4},
	}, nil)
	analyticsRepo.EXPECT().TopAlertsByMatchCount(ctx, userID, topAlertsLimit).Return(nil, nil)
	analyticsRepo.EXPECT().FrequencyDistribution(ctx, userID).Return(map[entity.Frequency]int64{}, nil)

	report, err := service.BuildReport(ctx, userID, now)

	require.NoError(t, err)
	require.Len(t, report.DailyMatches, dailySeriesDays)
	assert.Equal(t, "2026-08-31", report.DailyMatches[dailySeriesDays-1].Date, "series ends today")

	var nonZero int
	for _, bucket := range report.DailyMatches {
		if bucket.Count > 0 {
			nonZero++
			assert.Equal(t, "2026-08-30", bucket.Date)
			assert.Equal(t, int64(4), bucket.Count)
		}
	}
	assert.Equal(t, 1, nonZero)
}

func TestAnalyticsService_BuildReport_TopAlertsAndDistribution(t *testing.T) {
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	service := NewAnalyticsService(analyticsRepo)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	top := []*entity.Alert{
		{ID: uuid.New(), Name: "Hot rentals", Frequency: entity.FrequencyInstant, MatchCount: 40},
		{ID: uuid.New(), Name: "Sea view", Frequency: entity.FrequencyWeekly, MatchCount: 11},
	}

	setupAnalyticsMocks(analyticsRepo, ctx, userID)
	analyticsRepo.EXPECT().DailyEventCounts(ctx, userID, mock.Anything).Return(nil, nil)
	analyticsRepo.EXPECT().TopAlertsByMatchCount(ctx, userID, topAlertsLimit).Return(top, nil)
	analyticsRepo.EXPECT().FrequencyDistribution(ctx, userID).Return(map[entity.Frequency]int64{entity.FrequencyInstant: 4}, nil)

	report, err := service.BuildReport(ctx, userID, now)

	require.NoError(t, err)
	require.Len(t, report.TopAlerts, 2)
	assert.Equal(t, "Hot rentals", report.TopAlerts[0].Name)
	assert.Equal(t, 40, report.TopAlerts[0].MatchCount)

	assert.Equal(t, int64(4), report.FrequencyDistribution[entity.FrequencyInstant])
	assert.Equal(t, int64(0), report.FrequencyDistribution[entity.FrequencyDaily], "known frequencies are always present")
	assert.Equal(t, int64(0), report.FrequencyDistribution[entity.FrequencyWeekly])
}

func TestAnalyticsService_BuildReport_AvgIsZeroWithoutAlerts(t *testing.T) {
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	service := NewAnalyticsService(analyticsRepo)

	ctx := context.Background()
	userID := uuid.New()

	analyticsRepo.EXPECT().CountAlerts(ctx, userID).Return(int64(0), int64(0), nil)
	analyticsRepo.EXPECT().SumMatchCounts(ctx, userID).Return(int64(0), nil)
	analyticsRepo.EXPECT().CountEvents(ctx, userID).Return(int64(0), nil)
	analyticsRepo.EXPECT().CountEventsByChannel(ctx, userID, entity.ChannelEmail).Return(int64(0), nil)
	analyticsRepo.EXPECT().CountEventsByChannel(ctx, userID, entity.ChannelSMS).Return(int64(0), nil)
	analyticsRepo.EXPECT().CountEventsByChannel(ctx, userID, entity.ChannelWhatsApp).Return(int64(0), nil)
	analyticsRepo.EXPECT().DailyEventCounts(ctx, userID, mock.Anything).Return(nil, nil)
	analyticsRepo.EXPECT().TopAlertsByMatchCount(ctx, userID, topAlertsLimit).Return(nil, nil)
	analyticsRepo.EXPECT().FrequencyDistribution(ctx, userID).Return(map[entity.Frequency]int64{}, nil)

	report, err := service.BuildReport(ctx, userID, time.Now())

	require.NoError(t, err)
	assert.Zero(t, report.AvgMatchesPerAlert)
}

func TestAnalyticsService_BuildReport_RepositoryFailure(t *testing.T) {
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	service := NewAnalyticsService(analyticsRepo)

	ctx := context.Background()
	userID := uuid.New()
	analyticsRepo.EXPECT().CountAlerts(ctx, userID).Return(int64(0), int64(0), errors.New("connection reset"))

	report, err := service.BuildReport(ctx, userID, time.Now())

	require.Error(t, err)
	assert.Nil(t, report)
}
