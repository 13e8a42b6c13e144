// Package mapping persists account-to-category assignments as a flat
// JSON object, reusable across uploads.
package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"finstmt/internal/model"
)

// Mapping assigns a category to an account name. Keys are exact,
// case-sensitive account names; values are members of model.Categories.
type Mapping map[string]model.Category

// Store reads and writes a mapping file.
type Store struct {
	Path string
}

// NewStore returns a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the mapping file. A missing or unreadable store is a valid
// empty state, not an error, so Load never fails the caller. Entries
// whose value is not one of the eight category labels are dropped;
// the affected accounts fall back to the default like any unmapped
// account.
func (s *Store) Load() Mapping {
	m := make(Mapping)

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return m
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return m
	}

	for account, label := range raw {
		if account == "" {
			continue
		}
		if c, ok := model.ParseCategory(label); ok {
			m[account] = c
		}
	}
	return m
}

// Save writes the whole mapping to disk. The write goes to a temp file
// in the same directory and is renamed into place, so readers never
// observe a partial mapping.
func (s *Store) Save(m Mapping) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating mapping dir: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding mapping: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".mapping-*.json")
	if err != nil {
		return fmt.Errorf("creating temp mapping file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing mapping: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing mapping file: %w", err)
	}

	if err := os.Rename(tmpName, s.Path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing mapping file: %w", err)
	}
	return nil
}

// Resolve returns the category mapped to the account, or the first
// category in canonical order when no mapping exists. The default is a
// deliberate policy: every account always classifies to something, so
// aggregation stays total.
func Resolve(account string, m Mapping) model.Category {
	if c, ok := m[account]; ok {
		return c
	}
	return model.DefaultCategory()
}
