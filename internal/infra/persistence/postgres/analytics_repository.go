package postgres

import (
	"context"
	"time"

	"estatex/internal/domain/entity"
	"estatex/internal/domain/repository"
	"estatex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// analyticsRepository implements the repository.AnalyticsRepository interface.
// All aggregation runs in SQL; nothing here loads full rows.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// CountAlerts returns the user's total and active alert counts.
func (repo *analyticsRepository) CountAlerts(ctx context.Context, userID uuid.UUID) (int64, int64, error) {
	var total, active int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to count alerts")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("user_id = ?", userID).
		Where("is_active = ?", true).
		Count(&active).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to count active alerts")
	}

	return total, active, nil
}

// SumMatchCounts returns the sum of the user's alerts' running match counts.
func (repo *analyticsRepository) SumMatchCounts(ctx context.Context, userID uuid.UUID) (int64, error) {
	var sum int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Select("COALESCE(SUM(match_count), 0)").
		Where("user_id = ?", userID).
		Scan(&sum).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum match counts")
	}

	return sum, nil
}

// CountEvents returns the user's total number of notification events.
func (repo *analyticsRepository) CountEvents(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationEventModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count notification events")
	}

	return count, nil
}

// CountEventsByChannel counts the user's events whose comma-joined channel
// list contains the given channel.
func (repo *analyticsRepository) CountEventsByChannel(ctx context.Context, userID uuid.UUID, channel entity.Channel) (int64, error) {
	var count int64

	// Channels are stored comma-joined; wrap both sides in commas so
	// "sms" never matches inside another channel name.
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationEventModel{}).
		Where("user_id = ?", userID).
		Where("',' || channels || ',' LIKE ?", "%,"+string(channel)+",%").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count events by channel")
	}

	return count, nil
}

// DailyEventCounts returns the user's per-day event counts since the given
// instant.
func (repo *analyticsRepository) DailyEventCounts(ctx context.Context, userID uuid.UUID, since time.Time) ([]repository.DailyEventCount, error) {
	var counts []repository.DailyEventCount

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationEventModel{}).
		Select("date_trunc('day', sent_at) AS day, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Where("sent_at >= ?", since).
		Group("day").
		Order("day").
		Scan(&counts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute daily event counts")
	}

	return counts, nil
}

// TopAlertsByMatchCount returns the user's highest-matching alerts, ties
// broken by newest creation first.
func (repo *analyticsRepository) TopAlertsByMatchCount(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("match_count DESC, created_at DESC").
		Limit(limit).
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find top alerts")
	}

	return toAlertDomainList(alertModels), nil
}

// FrequencyDistribution counts the user's alerts per frequency value.
func (repo *analyticsRepository) FrequencyDistribution(ctx context.Context, userID uuid.UUID) (map[entity.Frequency]int64, error) {
	var rows []struct {
		Frequency string
		Count     int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Select("frequency, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("frequency").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute frequency distribution")
	}

	distribution := make(map[entity.Frequency]int64, len(rows))
	for _, row := range rows {
		distribution[entity.Frequency(row.Frequency)] = row.Count
	}

	return distribution, nil
}
