// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"
	"strings"
)

// currencySymbol prefixes formatted amounts. Process-wide, set once at
// startup from config.
var currencySymbol = "$"

// SetCurrency overrides the currency symbol used by FormatAmount.
func SetCurrency(sym string) {
	if sym != "" {
		currencySymbol = sym
	}
}

// FormatAmount formats a monetary value with the currency symbol, comma
// separators, and two decimals. e.g., 1234.5 -> "$1,234.50",
// -40 -> "-$40.00".
func FormatAmount(v float64) string {
	if v < 0 {
		return "-" + FormatAmount(-v)
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	return currencySymbol + groupDigits(intPart) + "." + fracPart
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupDigits(strconv.FormatInt(n, 10))
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
