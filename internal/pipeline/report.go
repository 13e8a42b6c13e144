package pipeline

import (
	"finstmt/internal/mapping"
	"finstmt/internal/model"
)

// Report is the complete output of one classification-and-aggregation
// pass. Both statements and the cross-reference are always produced
// together; warnings are data fields, never errors.
type Report struct {
	Rows   []model.ClassifiedRow
	Totals model.CategoryTotals

	IncomeStatement []model.LineItem
	BalanceSheet    []model.LineItem
	CrossRef        model.CrossReference

	Validation           model.ValidationResult
	BalanceSheetBalanced bool
}

// Generate runs the full pipeline over a ledger and mapping. It is a
// stateless pure computation: identical inputs yield bit-identical
// totals and line items.
func Generate(rows []model.LedgerRow, m mapping.Mapping) *Report {
	classified := Classify(rows, m)
	totals := Aggregate(classified)

	return &Report{
		Rows:                 classified,
		Totals:               totals,
		IncomeStatement:      BuildIncomeStatement(totals),
		BalanceSheet:         BuildBalanceSheet(totals),
		CrossRef:             BuildCrossReference(classified),
		Validation:           Validate(rows),
		BalanceSheetBalanced: CheckBalance(totals),
	}
}
