package entity

import "github.com/shopspring/decimal"

// Unit types for line items (construction billing).
const (
	UnitSqFt    = "sqft"
	UnitSqM     = "sqm"
	UnitNos     = "nos"
	UnitLumpSum = "ls"
)

// ValidUnitType reports whether u is a known unit type.
func ValidUnitType(u string) bool {
	switch u {
	case UnitSqFt, UnitSqM, UnitNos, UnitLumpSum:
		return true
	}
	return false
}

// InvoiceItem is one billable row of an invoice. Amount is derived from
// quantity, rate, discount and tax rate; items are ordered by Order then ID.
type InvoiceItem struct {
	ID        string
	InvoiceID string

	Description string
	UnitType    string
	Quantity    decimal.Decimal // > 0
	Rate        decimal.Decimal // >= 0
	Discount    decimal.Decimal // percentage, >= 0
	TaxRate     decimal.Decimal // percentage (GST), >= 0

	Amount decimal.Decimal // derived, rounded to 2 decimals

	Order int
}
