package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods.
const (
	MethodCash   = "cash"
	MethodBank   = "bank"
	MethodUPI    = "upi"
	MethodCard   = "card"
	MethodCheque = "cheque"
	MethodOther  = "other"
)

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case MethodCash, MethodBank, MethodUPI, MethodCard, MethodCheque, MethodOther:
		return true
	}
	return false
}

// Payment is an append-only record of money received against an invoice.
// It is never edited; recording one recomputes the invoice's AmountPaid.
type Payment struct {
	ID        string
	InvoiceID string

	Amount    decimal.Decimal // > 0
	IsAdvance bool
	Method    string
	Reference string
	Note      string
	PaidOn    time.Time // date of receipt

	CreatedAt time.Time
}
