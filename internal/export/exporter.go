// Package export writes generated statements to CSV, PDF, and XLSX
// artifacts. Writers consume the computed report read-only; all domain
// arithmetic happens upstream in the pipeline.
package export

import "finstmt/internal/pipeline"

// StatementExporter writes one artifact format for a generated report.
// Export returns the paths it wrote.
type StatementExporter interface {
	Name() string
	Export(dir string, rep *pipeline.Report) ([]string, error)
}

// All returns every available exporter, in output order.
func All() []StatementExporter {
	return []StatementExporter{
		CSVExporter{},
		PDFExporter{},
		WorkbookExporter{},
	}
}
