// Package scheduler wires up the cron tasks that keep the dashboard warm:
// a periodic recommended-jobs refresh and a sweep that evicts expired cache
// entries instead of leaving them for the next lazy read.
package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"go-jobdash-backend/internal/domain"
)

// Scheduler wraps robfig/cron and owns the recurring dashboard tasks.
type Scheduler struct {
	cron        *cron.Cron
	jobUC       domain.JobUsecase
	store       domain.CacheStore
	log         *slog.Logger
	refreshSpec string
	sweepSpec   string
}

// New creates a Scheduler firing the refresh every refreshMinutes and the
// cache sweep every sweepMinutes.
func New(jobUC domain.JobUsecase, store domain.CacheStore, refreshMinutes, sweepMinutes int, log *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		jobUC:       jobUC,
		store:       store,
		log:         log,
		refreshSpec: fmt.Sprintf("@every %dm", refreshMinutes),
		sweepSpec:   fmt.Sprintf("@every %dm", sweepMinutes),
	}
}

// Start registers both tasks and starts the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.refreshSpec, func() {
		s.runRefresh(ctx)
	}); err != nil {
		return fmt.Errorf("cron.AddFunc refresh: %w", err)
	}
	if _, err := s.cron.AddFunc(s.sweepSpec, func() {
		s.runSweep()
	}); err != nil {
		return fmt.Errorf("cron.AddFunc sweep: %w", err)
	}

	s.cron.Start()
	s.log.Info("scheduler started", "refresh", s.refreshSpec, "sweep", s.sweepSpec)
	return nil
}

// Stop cancels the scheduled tasks.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	if err := s.jobUC.RefreshRecommended(ctx, true); err != nil {
		s.log.Warn("scheduled refresh failed", "error", err)
		return
	}
	s.log.Info("scheduled refresh complete")
}

// runSweep reads every TTL-governed key; Load evicts expired entries as a
// side effect, so a sweep is just a round of reads.
func (s *Scheduler) runSweep() {
	swept := 0
	for _, key := range domain.CachedKeys() {
		if domain.UnwrappedKey(key) {
			continue
		}
		var discard json.RawMessage
		if !s.store.Load(key, 0, &discard) {
			swept++
		}
	}
	s.log.Debug("cache sweep complete", "missing_or_evicted", swept)
}
