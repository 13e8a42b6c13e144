package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"finstmt/internal/model"
	"finstmt/internal/pipeline"
)

// CSVExporter writes each statement to its own CSV file plus the
// classified trial balance used for cross-referencing.
type CSVExporter struct{}

// Name implements StatementExporter.
func (CSVExporter) Name() string { return "csv" }

// Export implements StatementExporter.
func (CSVExporter) Export(dir string, rep *pipeline.Report) ([]string, error) {
	incomePath := filepath.Join(dir, "income_statement.csv")
	if err := writeLineItems(incomePath, rep.IncomeStatement); err != nil {
		return nil, err
	}

	balancePath := filepath.Join(dir, "balance_sheet.csv")
	if err := writeLineItems(balancePath, rep.BalanceSheet); err != nil {
		return nil, err
	}

	classifiedPath := filepath.Join(dir, "trial_balance_classified.csv")
	if err := writeClassified(classifiedPath, rep.Rows); err != nil {
		return nil, err
	}

	return []string{incomePath, balancePath, classifiedPath}, nil
}

func writeLineItems(path string, items []model.LineItem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Description", "Amount"}); err != nil {
		return err
	}
	for _, item := range items {
		if err := w.Write([]string{item.Description, formatDecimal(item.Amount)}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// writeClassified emits the trial balance augmented with Category and
// Amount columns, row order preserved.
func writeClassified(path string, rows []model.ClassifiedRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Account Name", "Debit", "Credit", "Category", "Amount"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.AccountName,
			formatDecimal(r.Debit),
			formatDecimal(r.Credit),
			string(r.Category),
			formatDecimal(r.Amount),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// formatDecimal keeps full numeric fidelity: no rounding, no grouping.
func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
