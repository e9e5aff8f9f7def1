package billing

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Invoice numbers look like INV-202403-0001: a fixed prefix, the calendar
// year+month bucket, and a per-bucket sequence zero-padded to 4 digits.
const invoiceNumberPrefix = "INV"

var invoiceNumberRe = regexp.MustCompile(`^INV-(\d{6})-(\d{4,})$`)

// PeriodOf returns the YYYYMM bucket key for t.
func PeriodOf(t time.Time) string {
	return t.Format("200601")
}

// FormatInvoiceNumber renders the invoice number for a period and sequence.
// The sequence keeps growing past 9999; padding just stops applying.
func FormatInvoiceNumber(period string, seq int64) string {
	return fmt.Sprintf("%s-%s-%04d", invoiceNumberPrefix, period, seq)
}

// ParseInvoiceNumber extracts the period and sequence from an invoice number.
func ParseInvoiceNumber(number string) (period string, seq int64, err error) {
	m := invoiceNumberRe.FindStringSubmatch(number)
	if m == nil {
		return "", 0, fmt.Errorf("malformed invoice number %q", number)
	}
	seq, err = strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("parse invoice number sequence: %w", err)
	}
	return m[1], seq, nil
}
