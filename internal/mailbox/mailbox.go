// Package mailbox provides a single-slot handoff between the backup
// triggers (cron tick, source watcher, CLI) and the worker.
package mailbox

import (
	"context"
	"sync"
)

// Mailbox is a single-slot buffer where the latest job always wins.
// It is NOT a queue: it holds at most one pending job. Put overwrites
// any existing job; Take blocks until a job is available or the context
// is canceled. Triggers arriving while a backup cycle runs therefore
// coalesce into a single follow-up cycle.
type Mailbox[T any] struct {
	mu    sync.Mutex
	job   *T
	ready chan struct{}
}

// New creates an empty mailbox.
func New[T any]() *Mailbox[T] {
	return &Mailbox[T]{ready: make(chan struct{}, 1)}
}

// Put stores a job in the mailbox, replacing any existing job.
// It never blocks.
func (m *Mailbox[T]) Put(j T) {
	m.mu.Lock()
	m.job = &j
	m.mu.Unlock()

	select {
	case m.ready <- struct{}{}:
	default:
	}
}

// Take blocks until a job is available, then returns it and clears the
// slot. It returns false when ctx is canceled first.
func (m *Mailbox[T]) Take(ctx context.Context) (T, bool) {
	for {
		select {
		case <-ctx.Done():
			var zero T
			return zero, false
		case <-m.ready:
		}

		m.mu.Lock()
		j := m.job
		m.job = nil
		m.mu.Unlock()

		// A stale wakeup can find an empty slot after coalesced Puts.
		if j != nil {
			return *j, true
		}
	}
}

// HasJob reports whether a job is currently waiting.
func (m *Mailbox[T]) HasJob() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.job != nil
}
