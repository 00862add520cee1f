// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"estatex/internal/domain/entity"

	"github.com/google/uuid"
)

// DailyEventCount is one day's worth of dispatched events.
type DailyEventCount struct {
	Day   time.Time
	Count int64
}

// AnalyticsRepository defines the aggregate queries backing the analytics
// report. Every query is scoped to one user's alerts and events; aggregation
// happens in the database, the service layer only shapes the result.
type AnalyticsRepository interface {
	// CountAlerts returns the user's total and active alert counts.
	CountAlerts(ctx context.Context, userID uuid.UUID) (total int64, active int64, err error)

	// SumMatchCounts returns the sum of the user's alerts' running match
	// counts.
	SumMatchCounts(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountEvents returns the user's total number of notification events.
	CountEvents(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountEventsByChannel counts the user's events that include the given
	// channel. An event attempted on several channels counts once per
	// channel.
	CountEventsByChannel(ctx context.Context, userID uuid.UUID, channel entity.Channel) (int64, error)

	// DailyEventCounts returns the user's per-day event counts since the
	// given instant. Days with no events are absent from the result.
	DailyEventCounts(ctx context.Context, userID uuid.UUID, since time.Time) ([]DailyEventCount, error)

	// TopAlertsByMatchCount returns the user's alerts with the highest
	// match counts, ties broken by newest creation first.
	TopAlertsByMatchCount(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Alert, error)

	// FrequencyDistribution counts the user's alerts per frequency value.
	FrequencyDistribution(ctx context.Context, userID uuid.UUID) (map[entity.Frequency]int64, error)
}
