package source

import (
	"fmt"
	"strconv"
	"strings"
)

// parseAmount converts a Debit/Credit cell into a decimal. Empty cells
// are zero. A leading currency symbol and thousands separators are
// tolerated. Negative values pass through unchanged; whether contra
// entries are intentional is left to the user to judge.
func parseAmount(cell string) (float64, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, nil
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", cell)
	}
	if neg {
		v = -v
	}
	return v, nil
}
