package impl

import (
	"context"
	"log/slog"
	"time"

	"estatex/internal/domain/entity"
	"estatex/internal/domain/repository"
	"estatex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type evaluationService struct {
	alertRepo        repository.AlertRepository
	propertyRepo     repository.PropertyRepository
	notificationRepo repository.NotificationRepository
	dispatcher       *Dispatcher
	dispatchCap      int
	logger           *slog.Logger
}

// NewEvaluationService creates the alert evaluation orchestrator. dispatchCap
// bounds how many notification events a single alert may emit per cycle.
func NewEvaluationService(
	alertRepo repository.AlertRepository,
	propertyRepo repository.PropertyRepository,
	notificationRepo repository.NotificationRepository,
	dispatcher *Dispatcher,
	dispatchCap int,
	logger *slog.Logger,
) usecase.EvaluationUsecase {
	return &evaluationService{
		alertRepo:        alertRepo,
		propertyRepo:     propertyRepo,
		notificationRepo: notificationRepo,
		dispatcher:       dispatcher,
		dispatchCap:      dispatchCap,
		logger:           logger,
	}
}

// Evaluate runs the matching engine over the given alerts and properties.
// Every match accrues to the alert's match count, even when the frequency
// gate throttles the alert or the dispatch cap drops the overflow; the gate
// and the cap only limit what gets dispatched. LastTriggeredAt is set only
// for alerts that actually dispatched at least one event.
func (s *evaluationService) Evaluate(
	ctx context.Context,
	alerts []*entity.Alert,
	properties []*entity.Property,
	now time.Time,
) (map[uuid.UUID]usecase.AlertUpdate, []*entity.NotificationEvent) {
	updates := make(map[uuid.UUID]usecase.AlertUpdate)
	var events []*entity.NotificationEvent

	for _, alert := range alerts {
		if !alert.IsActive {
			continue
		}

		var matched []*entity.Property
		for _, property := range properties {
			if !property.Approved {
				continue
			}
			if Matches(property, &alert.Criteria) {
				matched = append(matched, property)
			}
		}

		if len(matched) == 0 {
			continue
		}

		update := usecase.AlertUpdate{MatchCountDelta: len(matched)}

		if !alert.Frequency.IsValid() {
			s.logger.Warn("unknown alert frequency, gating dispatch",
				slog.String("alert_id", alert.ID.String()),
				slog.String("frequency", string(alert.Frequency)))
		}

		if ShouldNotify(alert.Frequency, alert.LastTriggeredAt, now) {
			toDispatch := matched
			if len(toDispatch) > s.dispatchCap {
				toDispatch = toDispatch[:s.dispatchCap]
			}

			for _, property := range toDispatch {
				events = append(events, s.dispatcher.Dispatch(ctx, alert, property, now))
			}

			triggeredAt := now
			update.LastTriggeredAt = &triggeredAt
		}

		updates[alert.ID] = update
	}

	return updates, events
}

// RunCycle is the periodic evaluation entry point used by the scheduler and
// the external check-matches trigger.
func (s *evaluationService) RunCycle(ctx context.Context, since time.Time) (*usecase.CycleResult, error) {
	alerts, err := s.alertRepo.FindActiveAlerts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load active alerts")
	}

	properties, err := s.propertyRepo.FindCandidatesSince(ctx, since)
	if err != nil {
		return nil, errors.Wrap(err, "load candidate listings")
	}

	return s.evaluateAndPersist(ctx, alerts, properties)
}

// EvaluateProperty matches one listing against every active alert, used when
// a listing has just been approved.
func (s *evaluationService) EvaluateProperty(ctx context.Context, property *entity.Property) (*usecase.CycleResult, error) {
	alerts, err := s.alertRepo.FindActiveAlerts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load active alerts")
	}

	return s.evaluateAndPersist(ctx, alerts, []*entity.Property{property})
}

// EvaluateAlert matches one alert against the whole approved inventory, used
// right after the alert was created.
func (s *evaluationService) EvaluateAlert(ctx context.Context, alert *entity.Alert) (*usecase.CycleResult, error) {
	properties, err := s.propertyRepo.FindApproved(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load approved listings")
	}

	return s.evaluateAndPersist(ctx, []*entity.Alert{alert}, properties)
}

func (s *evaluationService) evaluateAndPersist(
	ctx context.Context,
	alerts []*entity.Alert,
	properties []*entity.Property,
) (*usecase.CycleResult, error) {
	now := time.Now()
	updates, events := s.Evaluate(ctx, alerts, properties, now)

	result := &usecase.CycleResult{
		AlertsEvaluated:   len(alerts),
		PropertiesScanned: len(properties),
		EventsDispatched:  len(events),
		CompletedAt:       now,
	}

	for alertID, update := range updates {
		result.MatchesFound += update.MatchCountDelta
		if update.LastTriggeredAt == nil {
			result.AlertsThrottled++
		}

		if err := s.alertRepo.ApplyEvaluation(ctx, alertID, update.MatchCountDelta, update.LastTriggeredAt); err != nil {
			s.logger.Error("apply evaluation failed",
				slog.String("alert_id", alertID.String()),
				slog.Any("error", err))
		}
	}

	if len(events) > 0 {
		if err := s.notificationRepo.BatchCreateNotificationEvents(ctx, events); err != nil {
			return nil, errors.Wrap(err, "persist notification events")
		}
	}

	s.logger.Info("evaluation cycle completed",
		slog.Int("alerts", result.AlertsEvaluated),
		slog.Int("properties", result.PropertiesScanned),
		slog.Int("matches", result.MatchesFound),
		slog.Int("dispatched", result.EventsDispatched),
		slog.Int("throttled", result.AlertsThrottled))

	return result, nil
}
