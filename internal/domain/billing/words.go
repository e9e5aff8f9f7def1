package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// WordsResult is the outcome of converting an amount to words. Fallback is
// set when the amount could not be rendered as words (negative or too large)
// and Words carries a plain "{CUR} {amount} Only" representation instead.
// Failure is explicit rather than silently swallowed.
type WordsResult struct {
	Words    string
	Fallback bool
}

// maxWordable keeps the crore recursion bounded; beyond this we fall back.
var maxWordable = decimal.New(1, 15)

// AmountInWords renders an invoice total as words using the Indian numbering
// system (lakh/crore). For INR the amount is split into rupees and paise:
// 1062.50 -> "One Thousand And Sixty-Two and Fifty Paise Rupees Only".
// Matches the original num2words(en_IN) behaviour, title-cased.
func AmountInWords(total decimal.Decimal, currency string) WordsResult {
	if total.IsNegative() || total.GreaterThanOrEqual(maxWordable) {
		return WordsResult{
			Words:    currency + " " + total.StringFixed(2) + " Only",
			Fallback: true,
		}
	}

	rupees := total.Truncate(0)
	paise := total.Sub(rupees).Mul(hundred).Truncate(0)

	words := title(intToIndianWords(rupees.IntPart()))
	if paise.IsPositive() {
		words += " and " + title(intToIndianWords(paise.IntPart())) + " Paise"
	}
	if currency == "INR" {
		words += " Rupees Only"
	} else {
		words += " Only"
	}
	return WordsResult{Words: words}
}

var ones = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// intToIndianWords converts a non-negative integer to words with Indian
// grouping: crore (10^7), lakh (10^5), thousand, hundred. Scale groups are
// comma-separated ("one lakh, eighteen thousand"); a trailing remainder under
// one hundred joins with "and". Crores recurse, so 12345678901 reads "one
// thousand, two hundred and thirty-four crore ...".
func intToIndianWords(n int64) string {
	if n < 20 {
		return ones[n]
	}
	if n < 100 {
		s := tens[n/10]
		if n%10 != 0 {
			s += "-" + ones[n%10]
		}
		return s
	}
	if n < 1000 {
		s := ones[n/100] + " hundred"
		if n%100 != 0 {
			s += " and " + intToIndianWords(n%100)
		}
		return s
	}

	type scale struct {
		value int64
		name  string
	}
	for _, sc := range []scale{{1_00_00_000, "crore"}, {1_00_000, "lakh"}, {1000, "thousand"}} {
		if n >= sc.value {
			s := intToIndianWords(n/sc.value) + " " + sc.name
			if rem := n % sc.value; rem != 0 {
				if rem < 100 {
					s += " and " + intToIndianWords(rem)
				} else {
					s += ", " + intToIndianWords(rem)
				}
			}
			return s
		}
	}
	return ones[0] // unreachable
}

// title uppercases the first letter of every word, including after hyphens,
// the way str.title() does in the original.
func title(s string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range s {
		if upperNext && r >= 'a' && r <= 'z' {
			b.WriteRune(r - 'a' + 'A')
		} else {
			b.WriteRune(r)
		}
		upperNext = r == ' ' || r == '-'
	}
	return b.String()
}
