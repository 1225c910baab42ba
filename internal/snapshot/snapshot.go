// Package snapshot owns the on-disk snapshot archives: the naming
// convention, listing, zip creation and deletion. The filename is the only
// persisted state; anything that does not match the convention is invisible
// to the rest of the system.
package snapshot

import (
	"strings"

	"github.com/raoulx24/ark/internal/calendar"
)

const (
	namePrefix = "export"
	nameSuffix = ".zip"

	// tmpPrefix marks in-progress archives. Dot-prefixed names never match
	// the convention, so a half-written archive cannot satisfy the
	// already-exists check.
	tmpPrefix = "."
)

// Snapshot represents a single archived snapshot.
type Snapshot struct {
	Name string
	Date calendar.Date
	Path string
	Size int64
}

// Filename returns the canonical archive name for a date,
// e.g. "export20240315.zip".
func Filename(d calendar.Date) string {
	return namePrefix + d.Key() + nameSuffix
}

// parseName extracts the snapshot date from an archive filename. It
// reports false for anything outside the naming convention, including
// prefix/suffix matches whose middle is not a valid date key.
func parseName(name string) (calendar.Date, bool) {
	if !strings.HasPrefix(name, namePrefix) || !strings.HasSuffix(name, nameSuffix) {
		return calendar.Date{}, false
	}
	key := strings.TrimSuffix(strings.TrimPrefix(name, namePrefix), nameSuffix)
	d, err := calendar.ParseKey(key)
	if err != nil {
		return calendar.Date{}, false
	}
	return d, true
}
