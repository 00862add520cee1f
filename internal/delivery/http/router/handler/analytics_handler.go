package handler

import (
	"log/slog"
	"net/http"
	"time"

	"estatex/internal/delivery/http/response"
	"estatex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AnalyticsHandler holds dependencies for the analytics report handler.
type AnalyticsHandler struct {
	uc     usecase.AnalyticsUsecase
	logger *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetReport handles the per-user analytics report request.
func (h *AnalyticsHandler) GetReport(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "User identity missing")
	}

	report, err := h.uc.BuildReport(c.Request().Context(), userID, time.Now())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "")
}
