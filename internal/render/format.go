package render

import (
	humanize "github.com/dustin/go-humanize"
)

// Money formats a currency amount: $1,234.56
func Money(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 2)
}

// Qty formats a resource quantity or rate: 1,234.5
func Qty(v float64) string {
	return humanize.CommafWithDigits(v, 1)
}

// Meters formats a depth: 12.3m
func Meters(v float64) string {
	return humanize.CommafWithDigits(v, 1) + "m"
}

// Count formats an integer with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}
