package usecase

import (
	"context"
	"time"

	"estatex/internal/domain/entity"

	"github.com/google/uuid"
)

// ChannelBreakdown counts dispatched events per delivery channel. An event
// carrying multiple channels contributes to each of its channels.
type ChannelBreakdown struct {
	Email    int64 `json:"email"`
	SMS      int64 `json:"sms"`
	WhatsApp int64 `json:"whatsapp"`
}

// DailyMatchCount is one day's bucket in the recent-activity series.
type DailyMatchCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// TopAlert summarizes one of the highest-matching alerts.
type TopAlert struct {
	AlertID    string           `json:"alertId"`
	Name       string           `json:"name"`
	Frequency  entity.Frequency `json:"frequency"`
	MatchCount int              `json:"matchCount"`
}

// AnalyticsReport aggregates one user's alert engagement metrics for the
// dashboard.
type AnalyticsReport struct {
	TotalAlerts           int64                      `json:"totalAlerts"`
	ActiveAlerts          int64                      `json:"activeAlerts"`
	TotalMatches          int64                      `json:"totalMatches"`
	AvgMatchesPerAlert    float64                    `json:"avgMatchesPerAlert"`
	TotalNotifications    int64                      `json:"totalNotifications"`
	Channels              ChannelBreakdown           `json:"channels"`
	DailyMatches          []DailyMatchCount          `json:"dailyMatches"`
	TopAlerts             []TopAlert                 `json:"topAlerts"`
	FrequencyDistribution map[entity.Frequency]int64 `json:"frequencyDistribution"`
	GeneratedAt           time.Time                  `json:"generatedAt"`
}

// AnalyticsUsecase defines the interface for alert analytics use cases
type AnalyticsUsecase interface {
	// BuildReport aggregates one user's alert and notification metrics,
	// with the daily series covering the trailing 30 days
	BuildReport(ctx context.Context, userID uuid.UUID, now time.Time) (*AnalyticsReport, error)
}
