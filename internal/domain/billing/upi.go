package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UPIPayload builds the QR-encodable UPI payment request string:
//
//	upi://pay?pa={upi_id}&pn={name}&am={total}&cu={currency}&tn=Invoice {number}
//
// The amount is rendered with exactly two decimal places. Returns "" when the
// company has no UPI id configured; the caller then skips the QR block.
func UPIPayload(upiID, companyName string, total decimal.Decimal, currency, invoiceNumber string) string {
	if upiID == "" {
		return ""
	}
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=%s&tn=Invoice %s",
		upiID, companyName, total.StringFixed(2), currency, invoiceNumber)
}
