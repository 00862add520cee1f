package usecase

import (
	"context"
	"time"

	"estatex/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertUpdate captures the per-alert outcome of one evaluation cycle.
// MatchCountDelta accrues for every match found, including matches that
// were throttled by the alert's frequency or dropped by the dispatch cap.
// LastTriggeredAt is non-nil only when at least one event was dispatched.
type AlertUpdate struct {
	MatchCountDelta int
	LastTriggeredAt *time.Time
}

// CycleResult summarizes one evaluation cycle for logging and the
// check-matches endpoint response.
type CycleResult struct {
	AlertsEvaluated   int       `json:"alertsEvaluated"`
	PropertiesScanned int       `json:"propertiesScanned"`
	MatchesFound      int       `json:"matchesFound"`
	EventsDispatched  int       `json:"eventsDispatched"`
	AlertsThrottled   int       `json:"alertsThrottled"`
	CompletedAt       time.Time `json:"completedAt"`
}

// EvaluationUsecase defines the interface for alert evaluation use cases
type EvaluationUsecase interface {
	// Evaluate runs the matching engine over the given alerts and candidate
	// properties, applies per-alert frequency gating and the dispatch cap,
	// and returns the resulting updates and dispatched events without
	// persisting anything
	Evaluate(ctx context.Context, alerts []*entity.Alert, properties []*entity.Property, now time.Time) (map[uuid.UUID]AlertUpdate, []*entity.NotificationEvent)

	// RunCycle loads active alerts and candidate listings from the given
	// window, evaluates them, persists the alert updates and events, and
	// sends the dispatched notifications over each alert's enabled channels
	RunCycle(ctx context.Context, since time.Time) (*CycleResult, error)

	// EvaluateProperty matches a single listing against all active alerts,
	// used by the property-approval webhook
	EvaluateProperty(ctx context.Context, property *entity.Property) (*CycleResult, error)

	// EvaluateAlert matches a single alert against the approved inventory,
	// used right after an alert is created so its owner sees matches
	// immediately
	EvaluateAlert(ctx context.Context, alert *entity.Alert) (*CycleResult, error)
}
