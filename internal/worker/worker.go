// Package worker runs the backup cycle: create today's snapshot, list
// what exists, plan retention and delete whatever fell out of it.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/raoulx24/ark/internal/calendar"
	"github.com/raoulx24/ark/internal/fs"
	"github.com/raoulx24/ark/internal/logging"
	"github.com/raoulx24/ark/internal/mailbox"
	"github.com/raoulx24/ark/internal/retention"
	"github.com/raoulx24/ark/internal/snapshot"
)

// Result summarizes one backup cycle.
type Result struct {
	Created      bool
	Skipped      bool
	Kept         int
	Deleted      int
	DeleteFailed int
	Elapsed      time.Duration
}

// Worker owns the create/list/plan/delete sequence for one destination.
type Worker struct {
	mu      sync.RWMutex
	sources []string
	dest    string

	store *snapshot.Store
	fs    fs.FS
	clock calendar.Clock
	log   logging.Logger
	mb    *mailbox.Mailbox[Job]
}

// New creates a worker. A nil filesystem selects the default OS one; a
// nil clock selects the system clock.
func New(sources []string, dest string, log logging.Logger, mb *mailbox.Mailbox[Job], filesystem fs.FS, clock calendar.Clock) *Worker {
	log.Debug("creating worker")
	if filesystem == nil {
		filesystem = fs.New()
	}
	if clock == nil {
		clock = calendar.SystemClock()
	}
	return &Worker{
		sources: sources,
		dest:    dest,
		store:   snapshot.NewStore(filesystem, log),
		fs:      filesystem,
		clock:   clock,
		log:     log,
		mb:      mb,
	}
}

// UpdateConfig hot-reloads the source list and destination.
func (w *Worker) UpdateConfig(sources []string, dest string) {
	w.log.Debug("entering Worker.UpdateConfig()")
	w.mu.Lock()
	w.sources = append([]string(nil), sources...)
	w.dest = dest
	w.mu.Unlock()
}

// Start runs the worker loop, executing one backup cycle per mailbox job
// until the context is canceled. Cycle failures are logged, not fatal;
// the next trigger gets a fresh attempt.
func (w *Worker) Start(ctx context.Context) {
	w.log.Info("starting worker")
	for {
		job, ok := w.mb.Take(ctx)
		if !ok {
			return
		}
		w.log.Debug("backup cycle triggered", "trigger", job.Trigger)
		if _, err := w.Run(ctx); err != nil {
			w.log.Error("worker: backup cycle failed", "error", err)
		}
	}
}

// Run executes one backup cycle and reports what it did. Creation and
// listing failures abort the cycle; individual deletion failures are
// logged and counted but never stop the remaining deletions, and by
// policy they do not fail the cycle.
func (w *Worker) Run(ctx context.Context) (Result, error) {
	w.mu.RLock()
	sources := append([]string(nil), w.sources...)
	dest := w.dest
	w.mu.RUnlock()

	var res Result

	if len(sources) == 0 {
		return res, errors.New("no source files configured")
	}

	if err := w.fs.MkdirAll(dest); err != nil {
		return res, fmt.Errorf("creating destination %s: %w", dest, err)
	}

	today := calendar.Today(w.clock)

	start := time.Now()
	snap, created, err := w.store.Create(ctx, dest, today, sources)
	if err != nil {
		return res, err
	}
	res.Elapsed = time.Since(start)
	res.Created = created
	res.Skipped = !created

	if created {
		w.log.Info("created backup", "name", snap.Name, "size", snap.Size, "elapsed", res.Elapsed.Round(time.Millisecond))
	} else {
		w.log.Info("backup already exists, skipping creation", "name", snap.Name)
	}

	// Listing failure aborts before any deletion: doing nothing is safer
	// than rotating against a guessed directory state.
	snaps, err := w.store.List(dest)
	if err != nil {
		return res, err
	}

	keep := retention.Plan(today, snapshotYears(snaps, today))
	w.log.Debug("retention planned", "existing", len(snaps), "keep", len(keep))

	for _, s := range snaps {
		if keep.Contains(s.Date) {
			res.Kept++
			continue
		}
		if err := w.store.Delete(dest, s); err != nil {
			res.DeleteFailed++
			w.log.Error("worker: deletion failed", "name", s.Name, "error", err)
			continue
		}
		res.Deleted++
		w.log.Info("deleted old backup", "name", s.Name)
	}

	w.log.Info("backup and rotation completed",
		"created", res.Created, "kept", res.Kept,
		"deleted", res.Deleted, "deleteFailed", res.DeleteFailed)
	return res, nil
}

// snapshotYears collects the distinct years present on disk, today's
// included. The retention planner uses the minimum to bound the yearly
// tier.
func snapshotYears(snaps []snapshot.Snapshot, today calendar.Date) []int {
	seen := map[int]struct{}{today.Year: {}}
	for _, s := range snaps {
		seen[s.Date.Year] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	return years
}
