// Package store provides a SQLite-backed cache for parsed trial balances.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"finstmt/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache holds parsed ledger rows keyed by source file identity, so
// repeat runs against an unchanged file skip re-parsing.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Lookup returns the cached rows for a file if the tracked mtime and
// size still match. hit is false when the file is unknown or stale.
func (c *Cache) Lookup(path string, mtimeNs, sizeBytes int64) (rows []model.LedgerRow, hit bool, err error) {
	var trackedMtime, trackedSize, rowCount int64
	err = c.db.QueryRow(
		"SELECT mtime_ns, size_bytes, row_count FROM ledgers WHERE file_path = ?", path,
	).Scan(&trackedMtime, &trackedSize, &rowCount)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if trackedMtime != mtimeNs || trackedSize != sizeBytes {
		return nil, false, nil
	}

	rs, err := c.db.Query(
		"SELECT account_name, debit, credit FROM ledger_rows WHERE file_path = ? ORDER BY seq", path,
	)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = rs.Close() }()

	rows = make([]model.LedgerRow, 0, rowCount)
	for rs.Next() {
		var r model.LedgerRow
		if err := rs.Scan(&r.AccountName, &r.Debit, &r.Credit); err != nil {
			return nil, false, err
		}
		rows = append(rows, r)
	}
	if err := rs.Err(); err != nil {
		return nil, false, err
	}
	return rows, true, nil
}

// SaveLedger stores parsed rows and the file identity they came from,
// replacing any previous entry for the same path.
func (c *Cache) SaveLedger(path string, mtimeNs, sizeBytes int64, rows []model.LedgerRow) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO ledgers
		(file_path, mtime_ns, size_bytes, row_count, parsed_at)
		VALUES (?, ?, ?, ?, ?)`,
		path, mtimeNs, sizeBytes, len(rows), now,
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM ledger_rows WHERE file_path = ?", path); err != nil {
		return err
	}

	for i, r := range rows {
		_, err = tx.Exec(`INSERT INTO ledger_rows
			(file_path, seq, account_name, debit, credit)
			VALUES (?, ?, ?, ?, ?)`,
			path, i, r.AccountName, r.Debit, r.Credit,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteLedger removes a cached ledger and its rows.
func (c *Cache) DeleteLedger(path string) error {
	_, err := c.db.Exec("DELETE FROM ledgers WHERE file_path = ?", path)
	return err
}

// LedgerCount returns the number of cached ledgers.
func (c *Cache) LedgerCount() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM ledgers").Scan(&count)
	return count, err
}
