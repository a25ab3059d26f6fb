// Package measure determines the byte size of local paths and remote resources.
package measure

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// Entry is the measured size of a single target.
type Entry struct {
	Name  string
	Size  int64
	Files int
}

// Path measures a regular file or the regular files below a directory.
func Path(fs afero.Fs, path string) (Entry, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	entry := Entry{Name: path}

	info, err := fs.Stat(path)
	if err != nil {
		return entry, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if !info.IsDir() {
		entry.Size = info.Size()
		entry.Files = 1

		return entry, nil
	}

	err = afero.Walk(fs, path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.Mode().IsRegular() {
			entry.Size += info.Size()
			entry.Files++
		}

		return nil
	})
	if err != nil {
		return entry, fmt.Errorf("failed to walk %s: %w", path, err)
	}

	return entry, nil
}

// Total returns the summed size of entries.
func Total(entries []Entry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Size
	}

	return total
}
