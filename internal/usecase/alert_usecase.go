package usecase

import (
	"context"

	"estatex/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAlertInput carries the request payload for creating a property alert
type CreateAlertInput struct {
	Name            string               `json:"name" validate:"required,max=120"`
	Description     string               `json:"description" validate:"max=500"`
	Frequency       entity.Frequency     `json:"frequency" validate:"required"`
	EmailEnabled    bool                 `json:"emailEnabled"`
	SMSEnabled      bool                 `json:"smsEnabled"`
	WhatsAppEnabled bool                 `json:"whatsappEnabled"`
	Criteria        entity.AlertCriteria `json:"criteria"`
}

// UpdateAlertInput carries the request payload for updating an existing alert.
// Nil fields are left unchanged.
type UpdateAlertInput struct {
	Name            *string               `json:"name" validate:"omitempty,max=120"`
	Description     *string               `json:"description" validate:"omitempty,max=500"`
	Frequency       *entity.Frequency     `json:"frequency"`
	EmailEnabled    *bool                 `json:"emailEnabled"`
	SMSEnabled      *bool                 `json:"smsEnabled"`
	WhatsAppEnabled *bool                 `json:"whatsappEnabled"`
	Criteria        *entity.AlertCriteria `json:"criteria"`
}

// AlertUsecase defines the interface for property alert management use cases
type AlertUsecase interface {
	// CreateAlert validates and stores a new alert, then evaluates it once
	// against recent approved listings so the owner gets immediate matches
	CreateAlert(ctx context.Context, userID uuid.UUID, input *CreateAlertInput) (*entity.Alert, error)

	// GetAlert retrieves a single alert owned by the given user
	GetAlert(ctx context.Context, userID, alertID uuid.UUID) (*entity.Alert, error)

	// ListAlerts retrieves all alerts owned by the given user, newest first
	ListAlerts(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error)

	// UpdateAlert applies a partial update to an alert owned by the given user
	UpdateAlert(ctx context.Context, userID, alertID uuid.UUID, input *UpdateAlertInput) (*entity.Alert, error)

	// SetAlertActive toggles an alert's active flag without touching its criteria
	SetAlertActive(ctx context.Context, userID, alertID uuid.UUID, active bool) (*entity.Alert, error)

	// DeleteAlert removes an alert and its notification history
	DeleteAlert(ctx context.Context, userID, alertID uuid.UUID) error

	// SendTestNotification dispatches a sample listing through the alert's
	// enabled channels so the owner can verify their channel setup. The
	// resulting event lands in the notification history like a real match.
	SendTestNotification(ctx context.Context, userID, alertID uuid.UUID) (*entity.NotificationEvent, error)
}
