package pipeline

import "finstmt/internal/model"

// headerRows is the number of rows the header occupies in exported
// tables; data rows are numbered from headerRows+1.
const headerRows = 1

// BuildCrossReference records, per category, the row number of the first
// ledger row classified into it. Single forward pass over input order;
// later occurrences of an already-seen category are ignored. Categories
// with no rows are absent from the result.
func BuildCrossReference(classified []model.ClassifiedRow) model.CrossReference {
	ref := make(model.CrossReference)
	for i, r := range classified {
		if _, seen := ref[r.Category]; seen {
			continue
		}
		ref[r.Category] = i + headerRows + 1
	}
	return ref
}
