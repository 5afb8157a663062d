// ABOUTME: Data migration between storage backends.
// ABOUTME: Copies every stored key and its raw value from source to destination.

package storage

import (
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Keys  int
	Bytes int
}

// MigrateData copies all data from src to dst. Values are copied verbatim, so
// the destination ends up byte-identical per key. Keys already present in dst
// are overwritten.
func MigrateData(src, dst Backend) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	keys, err := src.Keys()
	if err != nil {
		return nil, fmt.Errorf("list source keys: %w", err)
	}

	for _, k := range keys {
		v, err := src.Get(k)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", k, err)
		}
		if err := dst.Set(k, v); err != nil {
			return nil, fmt.Errorf("write %s: %w", k, err)
		}
		summary.Keys++
		summary.Bytes += len(v)
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
