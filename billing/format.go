package billing

import (
	"fmt"
	"math"
	"strings"
)

// RoundRupees rounds an amount to whole rupees for display. Computation
// never calls this; it exists for the renderers so every document rounds
// the same underlying figure exactly once.
func RoundRupees(amount float64) float64 {
	return math.Round(amount)
}

// FormatINR formats an amount in Indian Rupee notation with paise: after
// the rightmost 3 digits, digits group in pairs (₹1,23,45,678.90).
func FormatINR(amount float64) string {
	return formatIndian(amount, 2)
}

// FormatINRWhole formats an amount rounded to whole rupees, as the
// statutory documents print their bottom-line figures.
func FormatINRWhole(amount float64) string {
	return formatIndian(RoundRupees(amount), 0)
}

func formatIndian(amount float64, decimals int) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.*f", decimals, amount)
	intPart := raw
	decPart := ""
	if decimals > 0 {
		parts := strings.SplitN(raw, ".", 2)
		intPart, decPart = parts[0], parts[1]
	}

	result := "₹" + applyIndianGrouping(intPart)
	if decPart != "" {
		result += "." + decPart
	}
	if negative {
		result = "-" + result
	}
	return result
}

// applyIndianGrouping inserts commas using the Indian numbering system:
// the rightmost 3 digits form the first group, then pairs.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}
	return result
}

// FormatQty prints a quantity with two decimals, without currency marks.
func FormatQty(q float64) string {
	return fmt.Sprintf("%.2f", q)
}
