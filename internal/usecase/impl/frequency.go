package impl

import (
	"time"

	"estatex/internal/domain/entity"
)

const (
	dailyInterval  = 24 * time.Hour
	weeklyInterval = 7 * 24 * time.Hour
)

// ShouldNotify reports whether an alert with the given frequency may dispatch
// a notification burst at the given instant. An alert that has never
// triggered always may. Unknown frequencies fail closed: matches still
// accrue, but nothing is dispatched.
func ShouldNotify(frequency entity.Frequency, lastTriggeredAt *time.Time, now time.Time) bool {
	if lastTriggeredAt == nil {
		return true
	}

	switch frequency {
	case entity.FrequencyInstant:
		return true
	case entity.FrequencyDaily:
		return now.Sub(*lastTriggeredAt) >= dailyInterval
	case entity.FrequencyWeekly:
		return now.Sub(*lastTriggeredAt) >= weeklyInterval
	}

	return false
}
