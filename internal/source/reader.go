// Package source ingests trial-balance tables from CSV and XLSX files.
package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"finstmt/internal/model"

	"github.com/xuri/excelize/v2"
)

// RequiredColumns are the column headers a trial balance must carry,
// matched exactly and case-sensitively. Any other columns are ignored.
var RequiredColumns = []string{"Account Name", "Debit", "Credit"}

// SchemaError reports required columns missing from an ingested table.
// It is the one hard-stop condition: no row is materialized when the
// schema check fails.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("trial balance is missing required columns: %s",
		strings.Join(e.Missing, ", "))
}

// ReadFile parses a trial balance, dispatching on file extension.
func ReadFile(path string) ([]model.LedgerRow, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return readCSV(path)
	case ".xlsx", ".xlsm":
		return readWorkbook(path)
	default:
		return nil, fmt.Errorf("unsupported trial balance format %q (want .csv or .xlsx)", ext)
	}
}

func readCSV(path string) ([]model.LedgerRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, &SchemaError{Missing: RequiredColumns}
	}

	return tableToRows(records[0], records[1:])
}

func readWorkbook(path string) ([]model.LedgerRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &SchemaError{Missing: RequiredColumns}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, &SchemaError{Missing: RequiredColumns}
	}

	return tableToRows(rows[0], rows[1:])
}

// tableToRows applies the schema check to the header and converts data
// records into ledger rows. The schema check runs before any row is
// touched.
func tableToRows(header []string, records [][]string) ([]model.LedgerRow, error) {
	idx := make(map[string]int, len(RequiredColumns))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	nameCol := idx["Account Name"]
	debitCol := idx["Debit"]
	creditCol := idx["Credit"]

	rows := make([]model.LedgerRow, 0, len(records))
	for i, rec := range records {
		if isBlankRecord(rec) {
			continue
		}

		debit, err := parseAmount(field(rec, debitCol))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing Debit: %w", i+2, err)
		}
		credit, err := parseAmount(field(rec, creditCol))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing Credit: %w", i+2, err)
		}

		rows = append(rows, model.LedgerRow{
			AccountName: field(rec, nameCol),
			Debit:       debit,
			Credit:      credit,
		})
	}
	return rows, nil
}

func field(rec []string, col int) string {
	if col < len(rec) {
		return strings.TrimSpace(rec[col])
	}
	return ""
}

func isBlankRecord(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
