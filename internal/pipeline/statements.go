package pipeline

import (
	"math"

	"finstmt/internal/model"
)

// BuildIncomeStatement derives the four income-statement lines in fixed
// order. Expense totals carry whatever sign debit-minus-credit yielded;
// there is no absolute-value correction, so Net Income follows the raw
// signed arithmetic: Revenue - (OpEx + NonOpEx).
func BuildIncomeStatement(totals model.CategoryTotals) []model.LineItem {
	revenue := totals.Get(model.Revenue)
	opEx := totals.Get(model.OperatingExpenses)
	nonOpEx := totals.Get(model.NonOperatingExpenses)
	netIncome := revenue - (opEx + nonOpEx)

	return []model.LineItem{
		{Description: "Revenue", Amount: revenue},
		{Description: "Operating Expenses", Amount: opEx},
		{Description: "Non-Operating Expenses", Amount: nonOpEx},
		{Description: "Net Income", Amount: netIncome},
	}
}

// BuildBalanceSheet derives the seven balance-sheet lines in fixed order.
func BuildBalanceSheet(totals model.CategoryTotals) []model.LineItem {
	currentAssets := totals.Get(model.CurrentAssets)
	longAssets := totals.Get(model.LongTermAssets)
	currentLiab := totals.Get(model.CurrentLiabilities)
	longLiab := totals.Get(model.LongTermLiabilities)
	equity := totals.Get(model.Equity)

	return []model.LineItem{
		{Description: "Current Assets", Amount: currentAssets},
		{Description: "Long-term Assets", Amount: longAssets},
		{Description: "Total Assets", Amount: currentAssets + longAssets},
		{Description: "Current Liabilities", Amount: currentLiab},
		{Description: "Long-term Liabilities", Amount: longLiab},
		{Description: "Equity", Amount: equity},
		{Description: "Total Liabilities & Equity", Amount: currentLiab + longLiab + equity},
	}
}

// TotalAssets sums the asset-side categories.
func TotalAssets(totals model.CategoryTotals) float64 {
	return totals.Get(model.CurrentAssets) + totals.Get(model.LongTermAssets)
}

// TotalLiabilitiesEquity sums the liability and equity categories.
func TotalLiabilitiesEquity(totals model.CategoryTotals) float64 {
	return totals.Get(model.CurrentLiabilities) +
		totals.Get(model.LongTermLiabilities) +
		totals.Get(model.Equity)
}

// CheckBalance reports whether the balance-sheet equation holds within
// epsilon. Advisory only: statements are produced either way and the
// caller decides how to surface an imbalance.
func CheckBalance(totals model.CategoryTotals) bool {
	return math.Abs(TotalAssets(totals)-TotalLiabilitiesEquity(totals)) < epsilon
}
