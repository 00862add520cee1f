// Package scheduler runs the periodic alert evaluation cycle.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"estatex/config"
	"estatex/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Scheduler drives EvaluationUsecase.RunCycle on the configured schedule.
type Scheduler struct {
	cron         *cron.Cron
	evaluationUC usecase.EvaluationUsecase
	window       time.Duration
	logger       *slog.Logger
}

// Params holds dependencies for Scheduler, injected by Fx
type Params struct {
	fx.In

	Lc           fx.Lifecycle
	Config       *config.Config
	EvaluationUC usecase.EvaluationUsecase
	Logger       *slog.Logger
}

// New creates the evaluation scheduler and registers its lifecycle hooks.
func New(params Params) (*Scheduler, error) {
	cfg := params.Config.Alerts

	s := &Scheduler{
		cron:         cron.New(),
		evaluationUC: params.EvaluationUC,
		window:       cfg.CandidateWindow,
		logger:       params.Logger,
	}

	if _, err := s.cron.AddFunc(cfg.CheckSchedule, s.runCycle); err != nil {
		return nil, errors.Wrapf(err, "invalid check schedule %q", cfg.CheckSchedule)
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.logger.Info("Starting alert scheduler",
				slog.String("schedule", cfg.CheckSchedule),
				slog.Duration("candidate_window", cfg.CandidateWindow),
			)
			s.cron.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.logger.Info("Stopping alert scheduler")

			// Wait for an in-flight cycle to finish, bounded by the
			// shutdown context.
			select {
			case <-s.cron.Stop().Done():
			case <-ctx.Done():
			}

			return nil
		},
	})

	return s, nil
}

func (s *Scheduler) runCycle() {
	ctx := context.Background()
	since := time.Now().Add(-s.window)

	result, err := s.evaluationUC.RunCycle(ctx, since)
	if err != nil {
		s.logger.Error("Scheduled evaluation cycle failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Scheduled evaluation cycle finished",
		slog.Int("alerts_evaluated", result.AlertsEvaluated),
		slog.Int("matches_found", result.MatchesFound),
		slog.Int("events_dispatched", result.EventsDispatched),
	)
}

// Module provides the scheduler FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(func(*Scheduler) {}),
)
