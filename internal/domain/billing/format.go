package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// IndianGrouping formats the integer part of d with Indian digit grouping:
// the last three digits, then pairs of two, comma-separated.
// 118000 -> "1,18,000"; 1234567 -> "12,34,567"; -500 -> "-500".
// The fractional part is dropped, matching the display filter this replaces.
func IndianGrouping(d decimal.Decimal) string {
	negative := d.IsNegative()
	digits := d.Abs().Truncate(0).String()

	var formatted string
	if len(digits) <= 3 {
		formatted = digits
	} else {
		lastThree := digits[len(digits)-3:]
		remaining := digits[:len(digits)-3]
		var groups []string
		for len(remaining) > 2 {
			groups = append([]string{remaining[len(remaining)-2:]}, groups...)
			remaining = remaining[:len(remaining)-2]
		}
		if remaining != "" {
			groups = append([]string{remaining}, groups...)
		}
		formatted = strings.Join(groups, ",") + "," + lastThree
	}

	if negative {
		return "-" + formatted
	}
	return formatted
}

// Rupees formats d with the rupee symbol: 118000 -> "₹ 1,18,000".
func Rupees(d decimal.Decimal) string {
	return "₹ " + IndianGrouping(d)
}

// CurrencySymbol returns the display symbol for a supported currency code.
func CurrencySymbol(currency string) string {
	switch currency {
	case "INR":
		return "₹"
	case "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	}
	return currency
}
