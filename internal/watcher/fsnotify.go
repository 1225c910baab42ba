package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// startFsNotify triggers detect() when fsnotify reports changes to any
// watched source. The watch is placed on the parent directories so that
// write-to-temp-then-rename updates are seen as well.
func (w *Watcher) startFsNotify(ctx context.Context) error {
	notify, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer notify.Close()

	w.mu.RLock()
	sources := append([]string(nil), w.sources...)
	debounce := w.debounce
	w.mu.RUnlock()

	watched := make(map[string]struct{}, len(sources))
	dirs := make(map[string]struct{})
	for _, src := range sources {
		watched[src] = struct{}{}
		dirs[filepath.Dir(src)] = struct{}{}
	}
	for dir := range dirs {
		if err := notify.Add(dir); err != nil {
			return err
		}
	}

	// Channel to request debounce resets
	resetCh := make(chan struct{}, 1)

	// Debounce goroutine
	go func() {
		var t *time.Timer
		for range resetCh {
			if t != nil {
				t.Stop()
			}
			t = time.AfterFunc(debounce, func() {
				defer func() {
					if r := recover(); r != nil {
						w.log.Error("detect panic", "panic", r)
					}
				}()
				w.detect()
			})
		}
	}()
	defer close(resetCh)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-notify.Events:
			if !ok {
				w.log.Error("events channel closed")
				return nil
			}

			w.log.Debug("event", "name", ev.Name, "op", ev.Op)

			if _, ok := watched[filepath.Clean(ev.Name)]; !ok {
				continue
			}

			// Non-blocking send to reset debounce
			select {
			case resetCh <- struct{}{}:
			default:
			}

		case err, ok := <-notify.Errors:
			if !ok {
				return nil
			}
			w.log.Error("fsnotify error", "error", err)
		}
	}
}
