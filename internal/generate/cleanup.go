package generate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
)

// removeStale creates dir if needed and deletes every variant directory in it
// that is not in compatible. It returns the removed paths. Removal is not
// atomic: a failure part way leaves the earlier directories deleted.
func removeStale(dir string, compatible []string, logger *slog.Logger) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating version directory %s: %w", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var removed []string

	for _, e := range entries {
		if !e.IsDir() || slices.Contains(compatible, e.Name()) {
			continue
		}

		path := filepath.Join(dir, e.Name())
		if err := os.RemoveAll(path); err != nil {
			return removed, fmt.Errorf("removing stale variant %s: %w", path, err)
		}

		logger.Debug("removed stale variant", "path", path)
		removed = append(removed, path)
	}

	return removed, nil
}
