package news

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler triggers Fetcher.Refresh on a cron expression. It holds no
// state beyond the schedule itself; every run goes through the same append
// path the refresh-news command uses.
type Scheduler struct {
	cron    *cron.Cron
	fetcher *Fetcher
	logger  *zap.Logger
}

// NewScheduler creates a scheduler for the given fetcher.
func NewScheduler(fetcher *Fetcher, logger *zap.Logger) *Scheduler {
	return &Scheduler{cron: cron.New(), fetcher: fetcher, logger: logger}
}

// Start registers the refresh job under spec (standard 5-field cron syntax,
// e.g. "0 * * * *" for hourly) and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context, spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		if err := s.fetcher.Refresh(ctx); err != nil {
			s.logger.Error("scheduled news refresh failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
