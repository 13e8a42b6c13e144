package model

import "testing"

func TestCategoriesOrderAndDefault(t *testing.T) {
	if len(Categories) != 8 {
		t.Fatalf("len(Categories) = %d, want 8", len(Categories))
	}
	if Categories[0] != CurrentAssets {
		t.Fatalf("first category = %q, want %q", Categories[0], CurrentAssets)
	}
	if DefaultCategory() != CurrentAssets {
		t.Fatalf("DefaultCategory() = %q, want %q", DefaultCategory(), CurrentAssets)
	}
}

func TestCategoryRoles(t *testing.T) {
	tests := []struct {
		category Category
		want     Role
	}{
		{CurrentAssets, RoleAsset},
		{LongTermAssets, RoleAsset},
		{CurrentLiabilities, RoleLiability},
		{LongTermLiabilities, RoleLiability},
		{Equity, RoleEquity},
		{Revenue, RoleRevenue},
		{OperatingExpenses, RoleExpense},
		{NonOperatingExpenses, RoleExpense},
	}

	for _, tt := range tests {
		if got := tt.category.Role(); got != tt.want {
			t.Errorf("%s.Role() = %v, want %v", tt.category, got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("Long-term Liabilities")
	if !ok || c != LongTermLiabilities {
		t.Fatalf("ParseCategory(Long-term Liabilities) = %q, %v", c, ok)
	}

	// Case-sensitive, exact match only
	if _, ok := ParseCategory("long-term liabilities"); ok {
		t.Fatal("ParseCategory accepted a lowercased label")
	}
	if _, ok := ParseCategory("Cash"); ok {
		t.Fatal("ParseCategory accepted an unknown label")
	}
}
