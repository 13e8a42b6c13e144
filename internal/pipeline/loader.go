package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"finstmt/internal/model"
	"finstmt/internal/source"
	"finstmt/internal/store"
)

// CachePath returns the XDG-compliant location of the parse cache.
func CachePath() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "finstmt", "cache.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "finstmt", "cache.db")
}

// LoadLedger reads a trial balance, consulting the parse cache when one
// is provided. A cache hit skips re-parsing; on a miss the parsed rows
// are written back best-effort. fromCache reports which path was taken.
func LoadLedger(path string, cache *store.Cache) (rows []model.LedgerRow, fromCache bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false, fmt.Errorf("stat %s: %w", path, err)
	}
	mtimeNs := info.ModTime().UnixNano()
	size := info.Size()

	if cache != nil {
		cached, hit, err := cache.Lookup(path, mtimeNs, size)
		if err == nil && hit {
			return cached, true, nil
		}
		// Lookup errors fall through to a full parse.
	}

	rows, err = source.ReadFile(path)
	if err != nil {
		return nil, false, err
	}

	if cache != nil {
		// Best effort: a failed cache write never fails the run.
		_ = cache.SaveLedger(path, mtimeNs, size, rows)
	}
	return rows, false, nil
}
