package sigfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jrh-151/simplesig/pkg/simplesig"
)

// WriteAtomic writes data to path without ever exposing a partial file:
// the content goes to a temporary file in the destination directory, is
// synced, and is renamed over the target. On any failure the temporary
// file is removed and the target is left untouched.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temporary file in %s: %v", simplesig.ErrOutputWrite, dir, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %v", simplesig.ErrOutputWrite, tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: sync %s: %v", simplesig.ErrOutputWrite, tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", simplesig.ErrOutputWrite, tmpPath, err)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("%w: chmod %s: %v", simplesig.ErrOutputWrite, tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: rename to %s: %v", simplesig.ErrOutputWrite, path, err)
	}
	tmpPath = ""
	return nil
}
