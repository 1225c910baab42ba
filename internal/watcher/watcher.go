// Package watcher monitors the source files and emits backup jobs when
// they change.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/raoulx24/ark/internal/config"
	"github.com/raoulx24/ark/internal/fsprobe"
	"github.com/raoulx24/ark/internal/logging"
	"github.com/raoulx24/ark/internal/mailbox"
	"github.com/raoulx24/ark/internal/worker"
)

// Watcher observes the configured source files and enqueues a backup job
// when any of them is updated and has settled.
type Watcher struct {
	mu sync.RWMutex

	sources   []string
	mode      string
	interval  time.Duration
	debounce  time.Duration
	stability time.Duration

	log logging.Logger

	lastMod map[string]time.Time

	mb *mailbox.Mailbox[worker.Job]
}

// New creates a watcher for the given source files.
func New(sources []string, cfg config.WatchConfig, log logging.Logger, mb *mailbox.Mailbox[worker.Job]) *Watcher {
	return &Watcher{
		sources:   cleanPaths(sources),
		mode:      cfg.Mode,
		interval:  cfg.PollInterval,
		debounce:  cfg.DebounceWindow,
		stability: cfg.StabilityWindow,
		log:       log,
		lastMod:   make(map[string]time.Time),
		mb:        mb,
	}
}

// Start chooses the correct watching strategy based on config.
func (w *Watcher) Start(ctx context.Context) error {
	switch w.mode {
	case "fsnotify":
		return w.startFsNotify(ctx)

	case "poll":
		w.startPolling(ctx)
		return nil

	case "auto":
		// Probe the directory of the first source; the sources are
		// expected to live on the same filesystem.
		res := fsprobe.Probe(filepath.Dir(w.sources[0]))
		if res.FsnotifySupported {
			return w.startFsNotify(ctx)
		}
		w.log.Warn("fsnotify disabled, falling back to polling", "reason", res.Reason)
		w.startPolling(ctx)
		return nil

	default:
		return fmt.Errorf("unknown watch mode %q", w.mode)
	}
}

// UpdateConfig updates watcher fields atomically for hot-reload.
func (w *Watcher) UpdateConfig(sources []string, cfg config.WatchConfig) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.sources = cleanPaths(sources)
	w.mode = cfg.Mode
	w.interval = cfg.PollInterval
	w.debounce = cfg.DebounceWindow
	w.stability = cfg.StabilityWindow

	// Forget modtimes of sources no longer watched.
	keep := make(map[string]time.Time, len(w.sources))
	for _, src := range w.sources {
		if t, ok := w.lastMod[src]; ok {
			keep[src] = t
		}
	}
	w.lastMod = keep
}

func cleanPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, filepath.Clean(p))
	}
	return out
}
