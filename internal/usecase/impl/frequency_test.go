package impl

import (
	"testing"
	"time"

	"estatex/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestShouldNotify_NeverTriggeredAlwaysNotifies(t *testing.T) {
	now := time.Now()

	assert.True(t, ShouldNotify(entity.FrequencyInstant, nil, now))
	assert.True(t, ShouldNotify(entity.FrequencyDaily, nil, now))
	assert.True(t, ShouldNotify(entity.FrequencyWeekly, nil, now))
	assert.True(t, ShouldNotify(entity.Frequency("bogus"), nil, now), "never-triggered passes even for unknown frequencies")
}

func TestShouldNotify_Instant(t *testing.T) {
	now := time.Now()
	justNow := now.Add(-time.Second)

	assert.True(t, ShouldNotify(entity.FrequencyInstant, &justNow, now))
}

func TestShouldNotify_Daily(t *testing.T) {
	now := time.Now()

	almostADay := now.Add(-24*time.Hour + time.Minute)
	assert.False(t, ShouldNotify(entity.FrequencyDaily, &almostADay, now))

	exactlyADay := now.Add(-24 * time.Hour)
	assert.True(t, ShouldNotify(entity.FrequencyDaily, &exactlyADay, now), "threshold is inclusive")

	overADay := now.Add(-25 * time.Hour)
	assert.True(t, ShouldNotify(entity.FrequencyDaily, &overADay, now))
}

func TestShouldNotify_Weekly(t *testing.T) {
	now := time.Now()

	sixDays := now.Add(-6 * 24 * time.Hour)
	assert.False(t, ShouldNotify(entity.FrequencyWeekly, &sixDays, now))

	sevenDays := now.Add(-7 * 24 * time.Hour)
	assert.True(t, ShouldNotify(entity.FrequencyWeekly, &sevenDays, now))
}

func TestShouldNotify_UnknownFrequencyFailsClosed(t *testing.T) {
	now := time.Now()
	yearAgo := now.Add(-365 * 24 * time.Hour)

	assert.False(t, ShouldNotify(entity.Frequency("monthly"), &yearAgo, now))
	assert.False(t, ShouldNotify(entity.Frequency(""), &yearAgo, now))
}
