// Package scheduler runs the periodic alert evaluation. Stagnation depends on the calendar, so
// alerts can appear without any write and are re-evaluated on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/robfig/cron/v3"
)

// evaluationTimeout bounds one alert run.
const evaluationTimeout = 2 * time.Minute

// AlertSource evaluates the current alerts.
type AlertSource interface {
	Alerts(ctx context.Context, now time.Time) ([]domain.Alert, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron   *cron.Cron
	spec   string
	loc    *time.Location
	alerts AlertSource
	logger *slog.Logger
	now    func() time.Time
}

// NewScheduler creates a scheduler evaluating alerts on spec (standard 5 field cron) in the
// named timezone. An empty timezone means UTC.
func NewScheduler(spec, timezone string, alerts AlertSource, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	loc := time.UTC
	if timezone != "" {
		var err error
		if loc, err = time.LoadLocation(timezone); err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
		}
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("invalid alert schedule %q: %w", spec, err)
	}

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		spec:   spec,
		loc:    loc,
		alerts: alerts,
		logger: logger.With(slog.String("component", "scheduler")),
		now:    time.Now,
	}, nil
}

// Start registers the alert job and starts the cron loop in the background.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.checkAlerts); err != nil {
		return fmt.Errorf("failed to schedule alert evaluation: %w", err)
	}
	s.logger.Info("Starting scheduler", slog.String("schedule", s.spec), slog.String("timezone", s.loc.String()))
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	s.logger.Info("Stopping scheduler")
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("Scheduler stop timed out")
	}
}

func (s *Scheduler) checkAlerts() {
	ctx, cancel := context.WithTimeout(context.Background(), evaluationTimeout)
	defer cancel()
	_, _ = s.RunOnce(ctx)
}

// RunOnce evaluates the alerts now and logs each of them.
func (s *Scheduler) RunOnce(ctx context.Context) ([]domain.Alert, error) {
	alerts, err := s.alerts.Alerts(ctx, s.now().In(s.loc))
	if err != nil {
		s.logger.Error("Failed to evaluate alerts", slog.String("error", err.Error()))
		return nil, err
	}
	for _, a := range alerts {
		s.logger.Warn("Alert raised",
			slog.String("alert_id", a.ID),
			slog.String("kind", string(a.Kind)),
			slog.String("related_entity_id", a.RelatedEntityID),
			slog.String("message", a.Message))
	}
	s.logger.Info("Alert evaluation finished", slog.Int("alerts", len(alerts)))
	return alerts, nil
}
