package export

import (
	"fmt"
	"path/filepath"

	"finstmt/internal/model"
	"finstmt/internal/pipeline"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the exported workbook.
const (
	SheetTrialBalance    = "Trial Balance"
	SheetIncomeStatement = "Income Statement"
	SheetBalanceSheet    = "Balance Sheet"
)

// WorkbookExporter writes a single workbook: the classified trial
// balance plus both statements, with statement lines hyperlinked to the
// first contributing ledger row via the cross-reference.
type WorkbookExporter struct{}

// Name implements StatementExporter.
func (WorkbookExporter) Name() string { return "xlsx" }

// Export implements StatementExporter.
func (WorkbookExporter) Export(dir string, rep *pipeline.Report) ([]string, error) {
	path := filepath.Join(dir, "financial_reports.xlsx")

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetTrialBalance); err != nil {
		return nil, err
	}
	if err := writeTrialBalanceSheet(f, rep.Rows); err != nil {
		return nil, err
	}
	if err := writeStatementSheet(f, SheetIncomeStatement, rep.IncomeStatement, rep.CrossRef); err != nil {
		return nil, err
	}
	if err := writeStatementSheet(f, SheetBalanceSheet, rep.BalanceSheet, rep.CrossRef); err != nil {
		return nil, err
	}

	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return []string{path}, nil
}

func writeTrialBalanceSheet(f *excelize.File, rows []model.ClassifiedRow) error {
	header := []interface{}{"Account Name", "Debit", "Credit", "Category", "Amount"}
	if err := f.SetSheetRow(SheetTrialBalance, "A1", &header); err != nil {
		return err
	}

	for i, r := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{r.AccountName, r.Debit, r.Credit, string(r.Category), r.Amount}
		if err := f.SetSheetRow(SheetTrialBalance, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeStatementSheet(f *excelize.File, sheet string, items []model.LineItem, ref model.CrossReference) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{"Description", "Amount"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, item := range items {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{item.Description, item.Amount}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}

		// Category lines link back to their first trial-balance row.
		// Derived lines (Net Income, the totals) have no single source
		// row and stay plain.
		cat, ok := model.ParseCategory(item.Description)
		if !ok {
			continue
		}
		tbRow, ok := ref[cat]
		if !ok {
			continue
		}
		link := fmt.Sprintf("'%s'!A%d", SheetTrialBalance, tbRow)
		if err := f.SetCellHyperLink(sheet, cell, link, "Location"); err != nil {
			return err
		}
	}
	return nil
}
