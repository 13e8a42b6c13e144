package pipeline

import (
	"reflect"
	"testing"

	"finstmt/internal/mapping"
	"finstmt/internal/model"
)

func exampleLedger() ([]model.LedgerRow, mapping.Mapping) {
	rows := []model.LedgerRow{
		{AccountName: "A", Debit: 100},
		{AccountName: "B", Credit: 40},
		{AccountName: "C", Debit: 60},
	}
	m := mapping.Mapping{
		"A": model.Revenue,
		"B": model.OperatingExpenses,
		"C": model.CurrentAssets,
	}
	return rows, m
}

func TestClassifySignedAmounts(t *testing.T) {
	rows, m := exampleLedger()

	classified := Classify(rows, m)
	if len(classified) != 3 {
		t.Fatalf("len(classified) = %d, want 3", len(classified))
	}

	want := []struct {
		category model.Category
		amount   float64
	}{
		{model.Revenue, 100},
		{model.OperatingExpenses, -40},
		{model.CurrentAssets, 60},
	}
	for i, w := range want {
		if classified[i].Category != w.category {
			t.Errorf("row %d category = %q, want %q", i, classified[i].Category, w.category)
		}
		if classified[i].Amount != w.amount {
			t.Errorf("row %d amount = %v, want %v", i, classified[i].Amount, w.amount)
		}
	}
}

func TestAggregateSignedPassThrough(t *testing.T) {
	rows, m := exampleLedger()
	totals := Aggregate(Classify(rows, m))

	if got := totals.Get(model.Revenue); got != 100 {
		t.Errorf("Revenue total = %v, want 100", got)
	}
	// Expense totals keep whatever sign debit-minus-credit yields.
	if got := totals.Get(model.OperatingExpenses); got != -40 {
		t.Errorf("Operating Expenses total = %v, want -40", got)
	}
	// Categories with no rows read as zero.
	if got := totals.Get(model.Equity); got != 0 {
		t.Errorf("Equity total = %v, want 0", got)
	}
}

func TestClassifyUnmappedDefaultsToFirstCategory(t *testing.T) {
	rows := []model.LedgerRow{{AccountName: "Mystery Account", Debit: 10}}

	classified := Classify(rows, mapping.Mapping{})
	if classified[0].Category != model.DefaultCategory() {
		t.Fatalf("unmapped account classified as %q, want %q",
			classified[0].Category, model.DefaultCategory())
	}
}

func TestAggregateConservation(t *testing.T) {
	rows := []model.LedgerRow{
		{AccountName: "Cash", Debit: 500},
		{AccountName: "Loan", Credit: 300},
		{AccountName: "Cash", Debit: 25.5},
		{AccountName: "Sales", Credit: 225.5},
	}
	m := mapping.Mapping{
		"Cash":  model.CurrentAssets,
		"Loan":  model.LongTermLiabilities,
		"Sales": model.Revenue,
	}

	var rowSum float64
	for _, r := range rows {
		rowSum += r.Debit - r.Credit
	}

	totals := Aggregate(Classify(rows, m))
	var totalSum float64
	for _, v := range totals {
		totalSum += v
	}

	if totalSum != rowSum {
		t.Fatalf("aggregation altered total magnitude: %v != %v", totalSum, rowSum)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	rows, m := exampleLedger()

	first := Generate(rows, m)
	second := Generate(rows, m)

	if !reflect.DeepEqual(first.Totals, second.Totals) {
		t.Fatal("repeated Generate produced different totals")
	}
	if !reflect.DeepEqual(first.IncomeStatement, second.IncomeStatement) {
		t.Fatal("repeated Generate produced different income statements")
	}
	if !reflect.DeepEqual(first.BalanceSheet, second.BalanceSheet) {
		t.Fatal("repeated Generate produced different balance sheets")
	}
	if !reflect.DeepEqual(first.CrossRef, second.CrossRef) {
		t.Fatal("repeated Generate produced different cross-references")
	}
}
