// Package scheduler turns cron ticks into backup jobs.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/raoulx24/ark/internal/logging"
	"github.com/raoulx24/ark/internal/mailbox"
	"github.com/raoulx24/ark/internal/worker"
)

// Scheduler submits a backup job on every tick of a cron expression.
// It does not run backups itself; the single worker consuming the
// mailbox guarantees cycles never overlap even if ticks pile up.
type Scheduler struct {
	mu      sync.Mutex
	spec    string
	cron    *cron.Cron
	mb      *mailbox.Mailbox[worker.Job]
	log     logging.Logger
	running bool
}

// New creates a scheduler for the given cron expression.
func New(spec string, mb *mailbox.Mailbox[worker.Job], log logging.Logger) *Scheduler {
	return &Scheduler{
		spec: spec,
		cron: cron.New(),
		mb:   mb,
		log:  log,
	}
}

// Start validates the cron expression and begins ticking. An empty
// expression disables the scheduler; other triggers may still run.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spec == "" {
		s.log.Info("no schedule configured, scheduler disabled")
		return nil
	}

	if _, err := cron.ParseStandard(s.spec); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.spec, err)
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		s.log.Debug("cron tick")
		s.mb.Put(worker.Job{Trigger: "cron", Time: time.Now()})
	})
	if err != nil {
		return fmt.Errorf("scheduling backup: %w", err)
	}

	s.cron.Start()
	s.running = true
	s.log.Info("scheduler started", "schedule", s.spec)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop halts the cron loop and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil && s.running {
		<-s.cron.Stop().Done()
		s.running = false
		s.log.Info("scheduler stopped")
	}
}

// NextRun returns the next scheduled tick, or nil when not running.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}
	next := entries[0].Next
	return &next
}
