package fs

import (
	"context"
	"os"
)

// wraps os.Rename with retry logic. Snapshot archives are written under a
// temporary name and renamed into place, so this is the commit point of
// a backup.

func renameWithRetry(ctx context.Context, oldPath, newPath string) error {
	return retry(ctx, "rename", func() error {
		return os.Rename(oldPath, newPath)
	})
}
