package export

import (
	"fmt"
	"path/filepath"

	"finstmt/internal/cli"
	"finstmt/internal/model"
	"finstmt/internal/pipeline"

	"github.com/go-pdf/fpdf"
)

// PDFExporter writes both statements to a single-page PDF report.
type PDFExporter struct{}

// Name implements StatementExporter.
func (PDFExporter) Name() string { return "pdf" }

// Export implements StatementExporter.
func (PDFExporter) Export(dir string, rep *pipeline.Report) ([]string, error) {
	path := filepath.Join(dir, "financial_reports.pdf")

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	writeSection(pdf, "Income Statement", rep.IncomeStatement)
	pdf.Ln(10)
	writeSection(pdf, "Balance Sheet", rep.BalanceSheet)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return []string{path}, nil
}

func writeSection(pdf *fpdf.Fpdf, title string, items []model.LineItem) {
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, item := range items {
		line := fmt.Sprintf("%s: %s", item.Description, cli.FormatAmount(item.Amount))
		pdf.CellFormat(0, 10, line, "", 1, "", false, 0, "")
	}
}
