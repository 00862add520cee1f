// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"estatex/internal/delivery/http/middleware"
	"estatex/internal/delivery/http/response"
	"estatex/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AlertHandler holds dependencies for alert-related handlers.
type AlertHandler struct {
	uc     usecase.AlertUsecase
	logger *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler, injected by Fx.
func NewAlertHandler(uc usecase.AlertUsecase, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateAlert handles the alert creation request.
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "User identity missing")
	}

	var input usecase.CreateAlertInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	alert, err := h.uc.CreateAlert(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, alert, "Alert created successfully")
}

// GetAlert handles the single-alert read request.
func (h *AlertHandler) GetAlert(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "User identity missing")
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ALERT_ID", "Alert id must be a UUID")
	}

	alert, err := h.uc.GetAlert(c.Request().Context(), userID, alertID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, alert, "")
}

// ListAlerts handles the alert listing request.
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "User identity missing")
	}

	alerts, err := h.uc.ListAlerts(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, alerts, "")
}

// UpdateAlert handles the partial alert update request.
func (h *AlertHandler) UpdateAlert(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "User identity missing")
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ALERT_ID", "Alert id must be a UUID")
	}

	var input usecase.UpdateAlertInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	alert, err := h.uc.UpdateAlert(c.Request().Context(), userID, alertID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, alert, "Alert updated successfully")
}

// ToggleAlert handles the active-flag toggle request.
func (h *AlertHandler) ToggleAlert(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "User identity missing")
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ALERT_ID", "Alert id must be a UUID")
	}

	var input struct {
		IsActive bool `json:"isActive"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}

	alert, err := h.uc.SetAlertActive(c.Request().Context(), userID, alertID, input.IsActive)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, alert, "Alert status updated")
}

// DeleteAlert handles the alert deletion request.
func (h *AlertHandler) DeleteAlert(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "User identity missing")
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ALERT_ID", "Alert id must be a UUID")
	}

	if err := h.uc.DeleteAlert(c.Request().Context(), userID, alertID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Alert deleted successfully")
}

// TestNotification handles the channel verification request: it sends a
// sample listing through the alert's enabled channels.
func (h *AlertHandler) TestNotification(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "User identity missing")
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ALERT_ID", "Alert id must be a UUID")
	}

	event, err := h.uc.SendTestNotification(c.Request().Context(), userID, alertID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "Test notification sent")
}

// requestUserID reads the authenticated user set by the auth middleware.
func requestUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)

	return userID, ok
}
