package notifier

import (
	"fmt"
	"strings"
)

// FormatUSD formats a dollar amount with K/M/B suffixes and two decimals:
// 950,000,000 -> "$0.95B", 1,200,000 -> "$1.20M", 500 -> "$500.00".
func FormatUSD(n float64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("$%.2fB", n/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("$%.2fM", n/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("$%.2fK", n/1_000)
	default:
		return fmt.Sprintf("$%.2f", n)
	}
}

// FormatUSDCompact is FormatUSD with trailing zeroes trimmed, for target
// labels: 941,000,000 -> "$941M", 1,500,000,000 -> "$1.5B".
func FormatUSDCompact(n float64) string {
	return "$" + compactAmount(n)
}

func compactAmount(n float64) string {
	var scaled float64
	var suffix string
	switch {
	case n >= 1_000_000_000:
		scaled, suffix = n/1_000_000_000, "B"
	case n >= 1_000_000:
		scaled, suffix = n/1_000_000, "M"
	case n >= 1_000:
		scaled, suffix = n/1_000, "K"
	default:
		return fmt.Sprintf("%.2f", n)
	}
	s := strings.TrimRight(fmt.Sprintf("%.2f", scaled), "0")
	s = strings.TrimRight(s, ".")
	return s + suffix
}
