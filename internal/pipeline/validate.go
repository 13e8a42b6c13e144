// Package pipeline turns a row-level trial balance into classified rows,
// category totals, derived statements, and a traceability cross-reference.
package pipeline

import (
	"math"

	"finstmt/internal/model"
)

// epsilon is the tolerance for debit/credit and balance-sheet equality.
// A difference of exactly epsilon still counts as balanced.
const epsilon = 1e-6

// Validate sums debits and credits across the ledger and checks they
// match within epsilon. An imbalance is surfaced as Balanced=false for
// the caller to warn on; processing always continues.
func Validate(rows []model.LedgerRow) model.ValidationResult {
	var res model.ValidationResult
	for _, r := range rows {
		res.TotalDebits += r.Debit
		res.TotalCredits += r.Credit
	}
	res.Balanced = math.Abs(res.TotalDebits-res.TotalCredits) <= epsilon
	return res
}
