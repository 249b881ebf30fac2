// Package format provides display helpers for the estimator's CLI and
// API output.
package format

import (
	"fmt"
	"math"
	"strings"
)

// USD formats a dollar amount with thousands separators ($12,345.67).
func USD(amount float64) string {
	negative := amount < 0
	amount = math.Abs(amount)

	intPart := int64(amount)
	decStr := fmt.Sprintf("%.2f", amount-float64(intPart))

	formatted := groupThousands(intPart) + decStr[1:] // skip the leading "0"

	if negative {
		return "-$" + formatted
	}
	return "$" + formatted
}

// USDCompact formats a dollar amount in compact notation.
// e.g., 1_500_000_000 → "$1.50B", 28_789.12 → "$28.79K"
func USDCompact(amount float64) string {
	negative := amount < 0
	amount = math.Abs(amount)

	prefix := "$"
	if negative {
		prefix = "-$"
	}

	switch {
	case amount >= 1e9:
		return fmt.Sprintf("%s%.2fB", prefix, amount/1e9)
	case amount >= 1e6:
		return fmt.Sprintf("%s%.2fM", prefix, amount/1e6)
	case amount >= 1e3:
		return fmt.Sprintf("%s%.2fK", prefix, amount/1e3)
	default:
		return fmt.Sprintf("%s%.2f", prefix, amount)
	}
}

// Points formats a point total in human-readable form.
// e.g., 781_541_372 → "781.54M", 450_300 → "450,300"
func Points(points float64) string {
	switch {
	case points >= 1e9:
		return fmt.Sprintf("%.2fB", points/1e9)
	case points >= 1e6:
		return fmt.Sprintf("%.2fM", points/1e6)
	default:
		return groupThousands(int64(math.Round(points)))
	}
}

// Pct formats a percentage value with sign and suffix.
// e.g., 2.45 → "+2.45%", -1.23 → "-1.23%"
func Pct(pct float64) string {
	if pct >= 0 {
		return fmt.Sprintf("+%.2f%%", pct)
	}
	return fmt.Sprintf("%.2f%%", pct)
}

// SharePct formats a network share, which is typically far below 1%.
func SharePct(pct float64) string {
	return fmt.Sprintf("%.4f%%", pct)
}

// groupThousands formats an integer with comma grouping.
func groupThousands(n int64) string {
	if n < 0 {
		return "-" + groupThousands(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	return strings.Join(groups, ",")
}
