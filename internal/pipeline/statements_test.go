package pipeline

import (
	"testing"

	"finstmt/internal/model"
)

func TestBuildIncomeStatementSignedArithmetic(t *testing.T) {
	// Expenses stored as raw signed pass-through: a credit-heavy
	// expense account stays negative and raises net income.
	totals := model.CategoryTotals{
		model.Revenue:           100,
		model.OperatingExpenses: -40,
	}

	items := BuildIncomeStatement(totals)

	want := []model.LineItem{
		{Description: "Revenue", Amount: 100},
		{Description: "Operating Expenses", Amount: -40},
		{Description: "Non-Operating Expenses", Amount: 0},
		{Description: "Net Income", Amount: 140},
	}
	if len(items) != len(want) {
		t.Fatalf("len(items) = %d, want %d", len(items), len(want))
	}
	for i, w := range want {
		if items[i] != w {
			t.Errorf("line %d = %+v, want %+v", i, items[i], w)
		}
	}
}

func TestBuildBalanceSheetTotals(t *testing.T) {
	totals := model.CategoryTotals{
		model.CurrentAssets:       500,
		model.LongTermAssets:      300,
		model.CurrentLiabilities:  200,
		model.LongTermLiabilities: 100,
		model.Equity:              500,
	}

	items := BuildBalanceSheet(totals)

	want := []model.LineItem{
		{Description: "Current Assets", Amount: 500},
		{Description: "Long-term Assets", Amount: 300},
		{Description: "Total Assets", Amount: 800},
		{Description: "Current Liabilities", Amount: 200},
		{Description: "Long-term Liabilities", Amount: 100},
		{Description: "Equity", Amount: 500},
		{Description: "Total Liabilities & Equity", Amount: 800},
	}
	if len(items) != len(want) {
		t.Fatalf("len(items) = %d, want %d", len(items), len(want))
	}
	for i, w := range want {
		if items[i] != w {
			t.Errorf("line %d = %+v, want %+v", i, items[i], w)
		}
	}

	if !CheckBalance(totals) {
		t.Fatal("CheckBalance = false for a balanced sheet")
	}
}

func TestCheckBalanceImbalance(t *testing.T) {
	totals := model.CategoryTotals{
		model.CurrentAssets: 800,
		model.Equity:        700,
	}
	if CheckBalance(totals) {
		t.Fatal("CheckBalance = true for an unbalanced sheet")
	}
}

func TestGenerateEmptyLedger(t *testing.T) {
	rep := Generate(nil, nil)

	for _, item := range rep.IncomeStatement {
		if item.Amount != 0 {
			t.Errorf("income line %q = %v, want 0", item.Description, item.Amount)
		}
	}
	for _, item := range rep.BalanceSheet {
		if item.Amount != 0 {
			t.Errorf("balance line %q = %v, want 0", item.Description, item.Amount)
		}
	}
	if !rep.BalanceSheetBalanced {
		t.Fatal("empty ledger balance sheet should be balanced")
	}
	if !rep.Validation.Balanced {
		t.Fatal("empty ledger should validate as balanced")
	}
	if len(rep.CrossRef) != 0 {
		t.Fatalf("empty ledger cross-reference has %d entries, want 0", len(rep.CrossRef))
	}
}
