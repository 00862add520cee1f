package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"estatex/config"
	"estatex/internal/delivery/http/response"
	"estatex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CronHandler exposes the externally-triggered evaluation cycle.
type CronHandler struct {
	evaluationUC usecase.EvaluationUsecase
	cfg          *config.Config
	logger       *slog.Logger
}

// NewCronHandler is the constructor for CronHandler, injected by Fx.
func NewCronHandler(evaluationUC usecase.EvaluationUsecase, cfg *config.Config, logger *slog.Logger) *CronHandler {
	return &CronHandler{
		evaluationUC: evaluationUC,
		cfg:          cfg,
		logger:       logger,
	}
}

// CheckMatches runs one evaluation cycle on demand. The endpoint is meant for
// an external cron service and is guarded by a shared bearer secret.
func (h *CronHandler) CheckMatches(c echo.Context) error {
	secret := h.cfg.Alerts.CronSecret
	if secret == "" {
		return response.Unauthorized(c, "CRON_DISABLED", "External trigger is not configured")
	}

	authHeader := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
		return response.Unauthorized(c, "INVALID_CRON_SECRET", "Invalid cron secret")
	}

	since := time.Now().Add(-h.cfg.Alerts.CandidateWindow)

	result, err := h.evaluationUC.RunCycle(c.Request().Context(), since)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Triggered evaluation cycle finished",
		slog.Int("alerts_evaluated", result.AlertsEvaluated),
		slog.Int("events_dispatched", result.EventsDispatched),
	)

	return response.Success(c, http.StatusOK, result, "Evaluation cycle completed")
}
