package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/arsathrahman00-arsath/fpda/internal/config"
	"github.com/arsathrahman00-arsath/fpda/internal/repository/sheets"
	"github.com/arsathrahman00-arsath/fpda/internal/service/planning"
)

const dateLayout = "2006-01-02"

// Scheduler runs the morning day-requirement precompute so the kitchen sees
// the day's ingredient quantities without anyone pressing the button.
type Scheduler struct {
	cron     *cron.Cron
	planner  *planning.Planner
	exporter sheets.Exporter
	cfg      config.SchedulerConfig
	loc      *time.Location
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance. The exporter may be nil.
func NewScheduler(cfg config.SchedulerConfig, planner *planning.Planner, exporter sheets.Exporter, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, using local", zap.String("timezone", cfg.Timezone), zap.Error(err))
		loc = time.Local
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		planner:  planner,
		exporter: exporter,
		cfg:      cfg,
		loc:      loc,
		logger:   logger,
	}
}

// Start registers the precompute job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.computeToday); err != nil {
		s.logger.Error("failed to schedule day-requirement precompute", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) computeToday() {
	// The date must come from the cron's timezone; the server's local zone
	// can already be on the next day when the job fires.
	date := time.Now().In(s.loc).Format(dateLayout)
	s.logger.Info("precomputing day requirements", zap.String("date", date))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	plans, err := s.planner.ComputeAndSave(ctx, date)
	if err != nil {
		s.logger.Error("day-requirement precompute failed", zap.Error(err))
		return
	}
	if len(plans) == 0 {
		s.logger.Info("no schedule for date, nothing to compute", zap.String("date", date))
		return
	}

	if s.exporter != nil {
		for _, plan := range plans {
			if err := s.exporter.AppendDayRequirement(ctx, plan.Header, plan.Lines); err != nil {
				s.logger.Error("failed to export day requirement", zap.Error(err))
			}
		}
	}

	s.logger.Info("day requirements computed", zap.String("date", date), zap.Int("plans", len(plans)))
}
