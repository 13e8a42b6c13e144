package model

// LedgerRow is one line of an ingested trial balance. Rows are immutable
// once ingested; account names may repeat and legitimately aggregate.
type LedgerRow struct {
	AccountName string
	Debit       float64
	Credit      float64
}

// ClassifiedRow is a ledger row with its resolved category and signed
// amount (debit minus credit, debit-positive). Derived, never persisted.
type ClassifiedRow struct {
	LedgerRow
	Category Category
	Amount   float64
}

// LineItem is one row of a generated statement.
type LineItem struct {
	Description string
	Amount      float64
}

// CategoryTotals maps each category to its summed signed amount.
// Categories with no contributing rows are simply absent; Get treats
// them as zero.
type CategoryTotals map[Category]float64

// Get returns the total for a category, zero if it has no rows.
func (t CategoryTotals) Get(c Category) float64 {
	return t[c]
}

// CrossReference maps a category to the spreadsheet row number of the
// first ledger row classified into it. Data rows start at 2; the header
// occupies row 1. Categories with no rows are absent.
type CrossReference map[Category]int

// ValidationResult reports the debit/credit balance check over a ledger.
// An imbalance is a warning for the user, never a hard failure.
type ValidationResult struct {
	TotalDebits  float64
	TotalCredits float64
	Balanced     bool
}
