package impl

import (
	"context"
	"log/slog"
	"time"

	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/repository"
	"estatex/internal/errors"
	"estatex/internal/usecase"

	"github.com/google/uuid"
)

type alertService struct {
	alertRepo        repository.AlertRepository
	notificationRepo repository.NotificationRepository
	evaluationUC     usecase.EvaluationUsecase
	dispatcher       *Dispatcher
	logger           *slog.Logger
}

// NewAlertService creates a new alert management service instance
func NewAlertService(
	alertRepo repository.AlertRepository,
	notificationRepo repository.NotificationRepository,
	evaluationUC usecase.EvaluationUsecase,
	dispatcher *Dispatcher,
	logger *slog.Logger,
) usecase.AlertUsecase {
	return &alertService{
		alertRepo:        alertRepo,
		notificationRepo: notificationRepo,
		evaluationUC:     evaluationUC,
		dispatcher:       dispatcher,
		logger:           logger,
	}
}

// CreateAlert validates and stores a new alert, then evaluates it once
// against the approved inventory. The immediate evaluation is best-effort:
// a failure there leaves a valid stored alert for the next cycle.
func (s *alertService) CreateAlert(ctx context.Context, userID uuid.UUID, input *usecase.CreateAlertInput) (*entity.Alert, error) {
	if !input.Frequency.IsValid() {
		return nil, domainerrors.ErrInvalidCriteria.WrapMessage("unknown frequency " + string(input.Frequency))
	}

	now := time.Now()
	alert := &entity.Alert{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            input.Name,
		Description:     input.Description,
		IsActive:        true,
		Frequency:       input.Frequency,
		EmailEnabled:    input.EmailEnabled,
		SMSEnabled:      input.SMSEnabled,
		WhatsAppEnabled: input.WhatsAppEnabled,
		Criteria:        input.Criteria,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.alertRepo.CreateAlert(ctx, alert); err != nil {
		return nil, errors.Wrap(err, "create alert")
	}

	if _, err := s.evaluationUC.EvaluateAlert(ctx, alert); err != nil {
		s.logger.Error("initial alert evaluation failed",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err))
	}

	// Reload so the response reflects the initial evaluation outcome.
	stored, err := s.alertRepo.FindAlertByID(ctx, alert.ID)
	if err != nil {
		return alert, nil
	}

	return stored, nil
}

func (s *alertService) GetAlert(ctx context.Context, userID, alertID uuid.UUID) (*entity.Alert, error) {
	return s.findOwnedAlert(ctx, userID, alertID)
}

func (s *alertService) ListAlerts(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error) {
	alerts, err := s.alertRepo.FindAlertsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list alerts")
	}

	return alerts, nil
}

// UpdateAlert applies a partial update. Criteria replacement does not reset
// the match count or the trigger time; throttling history survives edits.
func (s *alertService) UpdateAlert(ctx context.Context, userID, alertID uuid.UUID, input *usecase.UpdateAlertInput) (*entity.Alert, error) {
	alert, err := s.findOwnedAlert(ctx, userID, alertID)
	if err != nil {
		return nil, err
	}

	if input.Frequency != nil && !input.Frequency.IsValid() {
		return nil, domainerrors.ErrInvalidCriteria.WrapMessage("unknown frequency " + string(*input.Frequency))
	}

	if input.Name != nil {
		alert.Name = *input.Name
	}
	if input.Description != nil {
		alert.Description = *input.Description
	}
	if input.Frequency != nil {
		alert.Frequency = *input.Frequency
	}
	if input.EmailEnabled != nil {
		alert.EmailEnabled = *input.EmailEnabled
	}
	if input.SMSEnabled != nil {
		alert.SMSEnabled = *input.SMSEnabled
	}
	if input.WhatsAppEnabled != nil {
		alert.WhatsAppEnabled = *input.WhatsAppEnabled
	}
	if input.Criteria != nil {
		alert.Criteria = *input.Criteria
	}
	alert.UpdatedAt = time.Now()

	if err := s.alertRepo.UpdateAlert(ctx, alert); err != nil {
		return nil, errors.Wrap(err, "update alert")
	}

	return alert, nil
}

func (s *alertService) SetAlertActive(ctx context.Context, userID, alertID uuid.UUID, active bool) (*entity.Alert, error) {
	alert, err := s.findOwnedAlert(ctx, userID, alertID)
	if err != nil {
		return nil, err
	}

	if alert.IsActive == active {
		return alert, nil
	}

	if err := s.alertRepo.UpdateAlertStatus(ctx, alertID, active); err != nil {
		return nil, errors.Wrap(err, "update alert status")
	}
	alert.IsActive = active

	return alert, nil
}

func (s *alertService) DeleteAlert(ctx context.Context, userID, alertID uuid.UUID) error {
	if _, err := s.findOwnedAlert(ctx, userID, alertID); err != nil {
		return err
	}

	if err := s.alertRepo.DeleteAlert(ctx, alertID); err != nil {
		return errors.Wrap(err, "delete alert")
	}

	return nil
}

// SendTestNotification pushes a sample listing through the alert's enabled
// channels. The event is persisted so the test shows up in the notification
// history alongside real matches.
func (s *alertService) SendTestNotification(ctx context.Context, userID, alertID uuid.UUID) (*entity.NotificationEvent, error) {
	alert, err := s.findOwnedAlert(ctx, userID, alertID)
	if err != nil {
		return nil, err
	}

	event := s.dispatcher.Dispatch(ctx, alert, testListing(), time.Now())

	if err := s.notificationRepo.BatchCreateNotificationEvents(ctx, []*entity.NotificationEvent{event}); err != nil {
		return nil, errors.Wrap(err, "persist test notification")
	}

	return event, nil
}

// testListing is the sample property used for channel verification sends.
func testListing() *entity.Property {
	return &entity.Property{
		ID:           uuid.New(),
		Title:        "Beautiful 2BHK Test Property",
		Category:     entity.CategoryRental,
		Approved:     true,
		Location:     "Test Location, Mumbai",
		PriceNumeric: 50000,
		PropertyType: "2BHK",
		Verified:     true,
	}
}

// findOwnedAlert loads an alert and enforces ownership. A foreign alert is
// reported as not-owned rather than not-found so the API distinguishes 403
// from 404.
func (s *alertService) findOwnedAlert(ctx context.Context, userID, alertID uuid.UUID) (*entity.Alert, error) {
	alert, err := s.alertRepo.FindAlertByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, domainerrors.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "find alert")
	}

	if alert.UserID != userID {
		return nil, domainerrors.ErrAlertNotOwned
	}

	return alert, nil
}
