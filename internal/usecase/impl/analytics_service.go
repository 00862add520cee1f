package impl

import (
	"context"
	"time"

	"estatex/internal/domain/entity"
	"estatex/internal/domain/repository"
	"estatex/internal/errors"
	"estatex/internal/usecase"

	"github.com/google/uuid"
)

const (
	dailySeriesDays = 30
	topAlertsLimit  = 5
	dayFormat       = "2006-01-02"
)

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) usecase.AnalyticsUsecase {
	return &analyticsService{analyticsRepo: analyticsRepo}
}

// BuildReport aggregates one user's alert engagement metrics. The daily
// series always spans exactly 30 buckets ending today, with zero-filled gaps,
// so the dashboard chart never has holes.
func (s *analyticsService) BuildReport(ctx context.Context, userID uuid.UUID, now time.Time) (*usecase.AnalyticsReport, error) {
	total, active, err := s.analyticsRepo.CountAlerts(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "count alerts")
	}

	totalMatches, err := s.analyticsRepo.SumMatchCounts(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "sum match counts")
	}

	totalEvents, err := s.analyticsRepo.CountEvents(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "count events")
	}

	channels, err := s.channelBreakdown(ctx, userID)
	if err != nil {
		return nil, err
	}

	daily, err := s.dailySeries(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	topAlerts, err := s.topAlerts(ctx, userID)
	if err != nil {
		return nil, err
	}

	distribution, err := s.analyticsRepo.FrequencyDistribution(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "frequency distribution")
	}
	for _, frequency := range []entity.Frequency{entity.FrequencyInstant, entity.FrequencyDaily, entity.FrequencyWeekly} {
		if _, ok := distribution[frequency]; !ok {
			distribution[frequency] = 0
		}
	}

	var avgMatches float64
	if total > 0 {
		avgMatches = float64(totalMatches) / float64(total)
	}

	return &usecase.AnalyticsReport{
		TotalAlerts:           total,
		ActiveAlerts:          active,
		TotalMatches:          totalMatches,
		AvgMatchesPerAlert:    avgMatches,
		TotalNotifications:    totalEvents,
		Channels:              channels,
		DailyMatches:          daily,
		TopAlerts:             topAlerts,
		FrequencyDistribution: distribution,
		GeneratedAt:           now,
	}, nil
}

func (s *analyticsService) channelBreakdown(ctx context.Context, userID uuid.UUID) (usecase.ChannelBreakdown, error) {
	var breakdown usecase.ChannelBreakdown

	email, err := s.analyticsRepo.CountEventsByChannel(ctx, userID, entity.ChannelEmail)
	if err != nil {
		return breakdown, errors.Wrap(err, "count email events")
	}
	sms, err := s.analyticsRepo.CountEventsByChannel(ctx, userID, entity.ChannelSMS)
	if err != nil {
		return breakdown, errors.Wrap(err, "count sms events")
	}
	whatsapp, err := s.analyticsRepo.CountEventsByChannel(ctx, userID, entity.ChannelWhatsApp)
	if err != nil {
		return breakdown, errors.Wrap(err, "count whatsapp events")
	}

	breakdown.Email = email
	breakdown.SMS = sms
	breakdown.WhatsApp = whatsapp

	return breakdown, nil
}

func (s *analyticsService) dailySeries(ctx context.Context, userID uuid.UUID, now time.Time) ([]usecase.DailyMatchCount, error) {
	start := now.AddDate(0, 0, -(dailySeriesDays - 1)).Truncate(24 * time.Hour)

	counts, err := s.analyticsRepo.DailyEventCounts(ctx, userID, start)
	if err != nil {
		return nil, errors.Wrap(err, "daily event counts")
	}

	byDay := make(map[string]int64, len(counts))
	for _, count := range counts {
		byDay[count.Day.Format(dayFormat)] = count.Count
	}

	series := make([]usecase.DailyMatchCount, 0, dailySeriesDays)
	for i := 0; i < dailySeriesDays; i++ {
		day := start.AddDate(0, 0, i).Format(dayFormat)
		series = append(series, usecase.DailyMatchCount{Date: day, Count: byDay[day]})
	}

	return series, nil
}

func (s *analyticsService) topAlerts(ctx context.Context, userID uuid.UUID) ([]usecase.TopAlert, error) {
	alerts, err := s.analyticsRepo.TopAlertsByMatchCount(ctx, userID, topAlertsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "top alerts")
	}

	top := make([]usecase.TopAlert, 0, len(alerts))
	for _, alert := range alerts {
		top = append(top, usecase.TopAlert{
			AlertID:    alert.ID.String(),
			Name:       alert.Name,
			Frequency:  alert.Frequency,
			MatchCount: alert.MatchCount,
		})
	}

	return top, nil
}
