package snapshot

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/raoulx24/ark/internal/calendar"
	"github.com/raoulx24/ark/internal/fs"
	"github.com/raoulx24/ark/internal/logging"
)

// Store lists, creates and deletes snapshot archives in a destination
// directory.
type Store struct {
	fs  fs.FS
	log logging.Logger
}

// NewStore creates a store. A nil filesystem selects the default OS one.
func NewStore(filesystem fs.FS, log logging.Logger) *Store {
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Store{fs: filesystem, log: log}
}

// List enumerates the managed snapshots in dir. Entries that do not match
// the naming convention are skipped silently; they are never candidates
// for deletion.
func (s *Store) List(dir string) ([]Snapshot, error) {
	infos, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading destination %s: %w", dir, err)
	}

	var snaps []Snapshot
	for _, info := range infos {
		name := filepath.Base(info.Path)
		d, ok := parseName(name)
		if !ok {
			s.log.Debug("ignoring unmanaged entry", "name", name)
			continue
		}
		snaps = append(snaps, Snapshot{
			Name: name,
			Date: d,
			Path: info.Path,
			Size: info.Size,
		})
	}
	return snaps, nil
}

// Exists reports whether dir already holds a snapshot for the given date.
func (s *Store) Exists(dir string, d calendar.Date) bool {
	_, err := s.fs.Stat(filepath.Join(dir, Filename(d)))
	return err == nil
}

// Create writes the snapshot archive for d from the given source files.
// When the archive already exists the call is a no-op and created is
// false. The archive is written under a temporary name and renamed into
// place, so a crash mid-write never leaves a name that passes Exists.
func (s *Store) Create(ctx context.Context, dir string, d calendar.Date, sources []string) (snap Snapshot, created bool, err error) {
	name := Filename(d)
	final := filepath.Join(dir, name)

	if s.Exists(dir, d) {
		info, statErr := s.fs.Stat(final)
		if statErr != nil {
			return Snapshot{}, false, fmt.Errorf("stat existing snapshot %s: %w", name, statErr)
		}
		return Snapshot{Name: name, Date: d, Path: final, Size: info.Size}, false, nil
	}

	tmp := filepath.Join(dir, tmpPrefix+name)
	if err := writeArchive(tmp, sources); err != nil {
		_ = s.fs.Remove(tmp)
		return Snapshot{}, false, fmt.Errorf("writing archive %s: %w", name, err)
	}

	if err := s.fs.Rename(ctx, tmp, final); err != nil {
		_ = s.fs.Remove(tmp)
		return Snapshot{}, false, fmt.Errorf("finalizing archive %s: %w", name, err)
	}

	info, err := s.fs.Stat(final)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("stat new snapshot %s: %w", name, err)
	}
	return Snapshot{Name: name, Date: d, Path: final, Size: info.Size}, true, nil
}

// Delete removes a snapshot archive. A file that is already gone is not
// an error; rotation must stay idempotent across partial runs.
func (s *Store) Delete(dir string, snap Snapshot) error {
	err := s.fs.Remove(filepath.Join(dir, snap.Name))
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return fmt.Errorf("deleting %s: %w", snap.Name, err)
	}
	return nil
}
