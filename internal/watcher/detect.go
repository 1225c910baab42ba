package watcher

import (
	"os"
	"time"

	"github.com/raoulx24/ark/internal/worker"
)

// detect checks every watched source and enqueues a single backup job
// when at least one of them changed since the last look. Sources that
// are still being written (unstable size) are left for the next pass.
func (w *Watcher) detect() {
	w.mu.RLock()
	sources := append([]string(nil), w.sources...)
	w.mu.RUnlock()

	changed := false
	for _, src := range sources {
		info, err := os.Stat(src)
		if err != nil {
			continue
		}

		mod := info.ModTime()

		w.mu.RLock()
		last := w.lastMod[src]
		w.mu.RUnlock()

		if !mod.After(last) {
			continue
		}

		if !w.isStable(src) {
			w.log.Debug("source still changing, deferring", "source", src)
			continue
		}

		w.mu.Lock()
		w.lastMod[src] = mod
		w.mu.Unlock()

		w.log.Debug("source changed", "source", src, "modTime", mod)
		changed = true
	}

	if changed {
		w.mb.Put(worker.Job{Trigger: "watch", Time: time.Now()})
	}
}
