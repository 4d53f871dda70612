package scheduler

import (
	"context"
	"sync"
	"time"

	"weather-briefing/internal/services"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the daily briefing on a cron expression evaluated in the
// briefing's civil timezone, so "0 7 * * *" means 07:00 in Seoul regardless
// of where the process runs.
type Scheduler struct {
	cron     *cron.Cron
	briefing *services.Briefing
	logger   *zap.Logger
	spec     string
	runMu    sync.Mutex
}

func NewScheduler(briefing *services.Briefing, spec, timezone string, logger *zap.Logger) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		briefing: briefing,
		logger:   logger,
		spec:     spec,
	}, nil
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.runBriefing)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("Scheduler started", zap.String("spec", s.spec))
	return nil
}

func (s *Scheduler) runBriefing() {
	// A run that outlasts its slot is not stacked behind itself.
	if !s.runMu.TryLock() {
		s.logger.Warn("Skipping briefing run, previous run still in progress")
		return
	}
	defer s.runMu.Unlock()

	startTime := time.Now()
	s.logger.Info("Starting scheduled briefing", zap.Time("start_time", startTime))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := s.briefing.Run(ctx); err != nil {
		s.logger.Error("Scheduled briefing failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(startTime)))
		return
	}

	s.logger.Info("Scheduled briefing completed",
		zap.Duration("duration", time.Since(startTime)))
}

// ForceRun triggers a briefing outside the schedule, used by the manual
// HTTP endpoint.
func (s *Scheduler) ForceRun() {
	s.logger.Info("Manually triggering briefing")
	go s.runBriefing()
}

func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
}
