// Package model defines domain types for trial balances and financial statements.
package model

// Category is one of the eight fixed account classifications.
type Category string

// The closed category set, in canonical order. Unmapped accounts resolve
// to the first entry.
const (
	CurrentAssets        Category = "Current Assets"
	LongTermAssets       Category = "Long-term Assets"
	CurrentLiabilities   Category = "Current Liabilities"
	LongTermLiabilities  Category = "Long-term Liabilities"
	Equity               Category = "Equity"
	Revenue              Category = "Revenue"
	OperatingExpenses    Category = "Operating Expenses"
	NonOperatingExpenses Category = "Non-Operating Expenses"
)

// Categories lists all categories in canonical order. The order drives
// classification-form rendering and the default for unmapped accounts.
var Categories = []Category{
	CurrentAssets,
	LongTermAssets,
	CurrentLiabilities,
	LongTermLiabilities,
	Equity,
	Revenue,
	OperatingExpenses,
	NonOperatingExpenses,
}

// DefaultCategory returns the category assigned to accounts with no
// saved mapping: the first category in canonical order.
func DefaultCategory() Category {
	return Categories[0]
}

// ParseCategory returns the category matching the given label, if any.
// Matching is exact and case-sensitive, like the mapping file format.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Role describes which statement grouping a category rolls up into.
type Role int

const (
	RoleAsset Role = iota
	RoleLiability
	RoleEquity
	RoleRevenue
	RoleExpense
)

// Role returns the statement role of a category.
func (c Category) Role() Role {
	switch c {
	case CurrentAssets, LongTermAssets:
		return RoleAsset
	case CurrentLiabilities, LongTermLiabilities:
		return RoleLiability
	case Equity:
		return RoleEquity
	case Revenue:
		return RoleRevenue
	default:
		return RoleExpense
	}
}
