package snapshot

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeArchive zips the source files into dst. Entries are stored under
// their base names only; the directory structure of the sources is not
// preserved inside the archive.
func writeArchive(dst string, sources []string) error {
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer func() {
		_ = out.Close()
	}()

	zw := zip.NewWriter(out)
	for _, src := range sources {
		if err := addEntry(zw, src); err != nil {
			_ = zw.Close()
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}
	return out.Sync()
}

// addEntry copies one source file into the archive under its base name.
func addEntry(zw *zip.Writer, src string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source %s: %w", src, err)
	}
	defer in.Close()

	w, err := zw.Create(filepath.Base(src))
	if err != nil {
		return fmt.Errorf("adding entry %s: %w", filepath.Base(src), err)
	}

	if _, err := io.Copy(w, in); err != nil {
		return fmt.Errorf("compressing %s: %w", src, err)
	}
	return nil
}
