// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/repository"
	"estatex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateAlert persists a new property alert.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.Alert) error {
	alertM := fromAlertDomain(alert)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	// Update the entity with generated values
	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt
	alert.UpdatedAt = alertM.UpdatedAt

	return nil
}

// FindAlertByID retrieves an alert by its unique ID.
func (repo *alertRepository) FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	var alertM model.AlertModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert by ID")
	}

	return toAlertDomain(&alertM), nil
}

// FindAlertsByUser retrieves all alerts owned by a specific user, newest first.
func (repo *alertRepository) FindAlertsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by user")
	}

	return toAlertDomainList(alertModels), nil
}

// FindActiveAlerts retrieves every active alert across all users.
func (repo *alertRepository) FindActiveAlerts(ctx context.Context) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active alerts")
	}

	return toAlertDomainList(alertModels), nil
}

// UpdateAlert persists edits to an alert's fields and criteria.
func (repo *alertRepository) UpdateAlert(ctx context.Context, alert *entity.Alert) error {
	alertM := fromAlertDomain(alert)

	result := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ?", alert.ID).
		Select("name", "description", "frequency",
			"email_enabled", "sms_enabled", "whats_app_enabled",
			"category", "property_type", "zone", "location",
			"min_price", "max_price", "min_area", "max_area",
			"bedrooms", "furnishing", "keywords", "amenities", "verified_only",
			"updated_at").
		Updates(alertM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update alert")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// UpdateAlertStatus toggles the active flag of an alert.
func (repo *alertRepository) UpdateAlertStatus(ctx context.Context, id uuid.UUID, isActive bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active":  isActive,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update alert status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// ApplyEvaluation increments the running match count and, when a burst was
// dispatched, records the trigger time. The increment happens in SQL so
// concurrent cycles never lose counts.
func (repo *alertRepository) ApplyEvaluation(ctx context.Context, id uuid.UUID, matchCount int, lastTriggeredAt *time.Time) error {
	updates := map[string]any{
		"match_count": gorm.Expr("match_count + ?", matchCount),
		"updated_at":  time.Now(),
	}
	if lastTriggeredAt != nil {
		updates["last_triggered_at"] = *lastTriggeredAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to apply evaluation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// DeleteAlert removes an alert together with its notification history.
func (repo *alertRepository) DeleteAlert(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("alert_id = ?", id).Delete(&model.NotificationEventModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete alert history")
		}

		result := tx.Where("id = ?", id).Delete(&model.AlertModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete alert")
		}
		if result.RowsAffected == 0 {
			return repository.ErrAlertNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete alert")
	}

	return nil
}

// fromAlertDomain maps a domain entity to its GORM model.
func fromAlertDomain(alert *entity.Alert) *model.AlertModel {
	return &model.AlertModel{
		ID:              alert.ID,
		UserID:          alert.UserID,
		Name:            alert.Name,
		Description:     alert.Description,
		IsActive:        alert.IsActive,
		Frequency:       string(alert.Frequency),
		EmailEnabled:    alert.EmailEnabled,
		SMSEnabled:      alert.SMSEnabled,
		WhatsAppEnabled: alert.WhatsAppEnabled,
		Category:        alert.Criteria.Category,
		PropertyType:    alert.Criteria.PropertyType,
		Zone:            alert.Criteria.Zone,
		Location:        alert.Criteria.Location,
		MinPrice:        alert.Criteria.MinPrice,
		MaxPrice:        alert.Criteria.MaxPrice,
		MinArea:         alert.Criteria.MinArea,
		MaxArea:         alert.Criteria.MaxArea,
		Bedrooms:        alert.Criteria.Bedrooms,
		Furnishing:      alert.Criteria.Furnishing,
		Keywords:        alert.Criteria.Keywords,
		Amenities:       strings.Join(alert.Criteria.Amenities, ","),
		VerifiedOnly:    alert.Criteria.VerifiedOnly,
		MatchCount:      alert.MatchCount,
		LastTriggeredAt: alert.LastTriggeredAt,
		CreatedAt:       alert.CreatedAt,
		UpdatedAt:       alert.UpdatedAt,
	}
}

// toAlertDomain maps a GORM model back to the domain entity.
func toAlertDomain(alertM *model.AlertModel) *entity.Alert {
	return &entity.Alert{
		ID:              alertM.ID,
		UserID:          alertM.UserID,
		Name:            alertM.Name,
		Description:     alertM.Description,
		IsActive:        alertM.IsActive,
		Frequency:       entity.Frequency(alertM.Frequency),
		EmailEnabled:    alertM.EmailEnabled,
		SMSEnabled:      alertM.SMSEnabled,
		WhatsAppEnabled: alertM.WhatsAppEnabled,
		Criteria: entity.AlertCriteria{
			Category:     alertM.Category,
			PropertyType: alertM.PropertyType,
			Zone:         alertM.Zone,
			Location:     alertM.Location,
			MinPrice:     alertM.MinPrice,
			MaxPrice:     alertM.MaxPrice,
			MinArea:      alertM.MinArea,
			MaxArea:      alertM.MaxArea,
			Bedrooms:     alertM.Bedrooms,
			Furnishing:   alertM.Furnishing,
			Keywords:     alertM.Keywords,
			Amenities:    entity.ParseAmenities(alertM.Amenities),
			VerifiedOnly: alertM.VerifiedOnly,
		},
		MatchCount:      alertM.MatchCount,
		LastTriggeredAt: alertM.LastTriggeredAt,
		CreatedAt:       alertM.CreatedAt,
		UpdatedAt:       alertM.UpdatedAt,
	}
}

func toAlertDomainList(alertModels []*model.AlertModel) []*entity.Alert {
	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts
}
