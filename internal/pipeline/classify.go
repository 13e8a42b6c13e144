package pipeline

import (
	"finstmt/internal/mapping"
	"finstmt/internal/model"
)

// Classify resolves a category for every ledger row and computes its
// signed amount (debit minus credit, debit-positive). Input order is
// preserved; the cross-reference depends on it.
func Classify(rows []model.LedgerRow, m mapping.Mapping) []model.ClassifiedRow {
	classified := make([]model.ClassifiedRow, 0, len(rows))
	for _, r := range rows {
		classified = append(classified, model.ClassifiedRow{
			LedgerRow: r,
			Category:  mapping.Resolve(r.AccountName, m),
			Amount:    r.Debit - r.Credit,
		})
	}
	return classified
}

// Aggregate sums signed amounts grouped by category. Categories with no
// contributing rows read as zero through CategoryTotals.Get.
func Aggregate(classified []model.ClassifiedRow) model.CategoryTotals {
	totals := make(model.CategoryTotals)
	for _, r := range classified {
		totals[r.Category] += r.Amount
	}
	return totals
}
