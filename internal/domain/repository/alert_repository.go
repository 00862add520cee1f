// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"estatex/internal/domain/entity"
	"estatex/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for alert persistence.
var (
	// ErrAlertNotFound is returned when an alert is not found.
	ErrAlertNotFound = errors.New("alert not found")
)

// AlertRepository defines the interface for alert-related database operations.
type AlertRepository interface {
	// CreateAlert persists a new alert.
	CreateAlert(ctx context.Context, alert *entity.Alert) error

	// FindAlertByID retrieves an alert by its unique ID.
	FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error)

	// FindAlertsByUser retrieves all alerts owned by a specific user.
	FindAlertsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error)

	// FindActiveAlerts retrieves every active alert across all users.
	// Used by the evaluation cycle.
	FindActiveAlerts(ctx context.Context) ([]*entity.Alert, error)

	// UpdateAlert persists edits to an alert's name, criteria and channel preferences.
	UpdateAlert(ctx context.Context, alert *entity.Alert) error

	// UpdateAlertStatus toggles the active flag of an alert.
	UpdateAlertStatus(ctx context.Context, id uuid.UUID, isActive bool) error

	// ApplyEvaluation persists the evaluator's per-alert outcome: the new
	// running match count and, when a burst was dispatched, the trigger time.
	// A nil lastTriggeredAt leaves the stored trigger time untouched.
	ApplyEvaluation(ctx context.Context, id uuid.UUID, matchCount int, lastTriggeredAt *time.Time) error

	// DeleteAlert removes an alert. Associated notification history is
	// removed by the same operation.
	DeleteAlert(ctx context.Context, id uuid.UUID) error
}
