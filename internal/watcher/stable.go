package watcher

import (
	"os"
	"time"
)

// isStable reports whether the file size stayed constant across the
// stability window, i.e. nothing is mid-write.
func (w *Watcher) isStable(path string) bool {
	w.mu.RLock()
	stability := w.stability
	w.mu.RUnlock()

	info1, err := os.Stat(path)
	if err != nil {
		return false
	}

	time.Sleep(stability)

	info2, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info1.Size() == info2.Size()
}
