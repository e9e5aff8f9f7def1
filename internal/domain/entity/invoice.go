package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stored invoice statuses. "unpaid" and "overdue" are additionally derived at
// read time from due date and payment state (see domain/billing.DisplayStatus).
const (
	StatusDraft     = "draft"
	StatusSent      = "sent"
	StatusPaid      = "paid"
	StatusOverdue   = "overdue"
	StatusCancelled = "cancelled"
	StatusUnpaid    = "unpaid" // display-only, never persisted
)

// Supported invoice currencies.
const (
	CurrencyINR = "INR"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyGBP = "GBP"
)

// ValidStatus reports whether s is a persistable invoice status.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// ValidCurrency reports whether c is a supported currency code.
func ValidCurrency(c string) bool {
	switch c {
	case CurrencyINR, CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	}
	return false
}

// Invoice is the header of an invoice. The four money fields and AmountPaid
// are derived: totals from line items, AmountPaid from recorded payments.
// They are never set directly by callers.
type Invoice struct {
	ID            string
	InvoiceNumber string // unique, immutable once assigned (INV-YYYYMM-NNNN)
	CompanyID     string
	ClientID      string

	InvoiceDate time.Time
	DueDate     time.Time

	Status   string
	Currency string

	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal

	AmountPaid decimal.Decimal

	Notes string
	Terms string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BalanceDue is the outstanding amount (reported, never stored).
func (i *Invoice) BalanceDue() decimal.Decimal {
	return i.Total.Sub(i.AmountPaid)
}

// IsPaid reports whether recorded payments cover the total.
func (i *Invoice) IsPaid() bool {
	return i.AmountPaid.GreaterThanOrEqual(i.Total)
}
