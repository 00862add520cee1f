package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"estatex/internal/delivery/http/response"
	"estatex/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification history handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetHistory handles the paginated notification history request.
func (h *NotificationHandler) GetHistory(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "User identity missing")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	events, total, err := h.uc.GetNotificationHistory(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"events": events,
		"total":  total,
	}, "")
}

// GetAlertHistory handles the per-alert notification history request.
func (h *NotificationHandler) GetAlertHistory(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "User identity missing")
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ALERT_ID", "Alert id must be a UUID")
	}

	events, err := h.uc.GetAlertHistory(c.Request().Context(), userID, alertID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"events": events}, "")
}

// MarkRead handles the mark-notification-read request.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "User identity missing")
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_NOTIFICATION_ID", "Notification id must be a UUID")
	}

	if err := h.uc.MarkNotificationRead(c.Request().Context(), userID, eventID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}
