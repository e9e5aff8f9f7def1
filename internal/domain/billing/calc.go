// Package billing holds the financial core of the invoicing system: line-item
// arithmetic, invoice totals, status derivation, invoice numbering and the
// presentation helpers (UPI payload, Indian currency formatting, amount in
// words). All money math uses shopspring/decimal; rounding to 2 decimal
// places happens only at stored/output values, never at intermediate steps.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/squarem/invoicing-api/internal/domain"
	"github.com/squarem/invoicing-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// LineParts are the unrounded components of a single line item.
type LineParts struct {
	Subtotal decimal.Decimal // quantity * rate
	Discount decimal.Decimal // subtotal * discount%/100
	Tax      decimal.Decimal // (subtotal - discount) * tax%/100
}

// Amount is the line total (taxable + tax), unrounded.
func (p LineParts) Amount() decimal.Decimal {
	return p.Subtotal.Sub(p.Discount).Add(p.Tax)
}

// ComputeLineParts validates the inputs and computes the unrounded line
// components. Discount above 100% is not rejected; the original system
// intends but does not enforce that bound.
func ComputeLineParts(quantity, rate, discountPct, taxPct decimal.Decimal) (LineParts, error) {
	if !quantity.GreaterThan(decimal.Zero) {
		return LineParts{}, domain.NewValidationError("quantity", "must be greater than zero")
	}
	if rate.LessThan(decimal.Zero) {
		return LineParts{}, domain.NewValidationError("rate", "must not be negative")
	}
	if discountPct.LessThan(decimal.Zero) {
		return LineParts{}, domain.NewValidationError("discount", "must not be negative")
	}
	if taxPct.LessThan(decimal.Zero) {
		return LineParts{}, domain.NewValidationError("tax_rate", "must not be negative")
	}

	subtotal := quantity.Mul(rate)
	discount := subtotal.Mul(discountPct).Div(hundred)
	tax := subtotal.Sub(discount).Mul(taxPct).Div(hundred)
	return LineParts{Subtotal: subtotal, Discount: discount, Tax: tax}, nil
}

// LineAmount computes one line item's stored amount:
// (quantity*rate) * (1 - discount/100) * (1 + tax/100), rounded to 2 decimals.
func LineAmount(quantity, rate, discountPct, taxPct decimal.Decimal) (decimal.Decimal, error) {
	parts, err := ComputeLineParts(quantity, rate, discountPct, taxPct)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return parts.Amount().Round(2), nil
}

// Totals are the derived invoice money fields, each rounded to 2 decimals.
// Invariant: Total == Subtotal - DiscountAmount + TaxAmount.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// ComputeTotals aggregates line items into invoice totals. Per-line parts are
// recomputed from quantity/rate/discount/tax instead of read from the stored
// amount, so stored drift can never propagate into the totals. Accumulation
// is unrounded; each output field is rounded once at the end. Idempotent.
func ComputeTotals(items []*entity.InvoiceItem) (Totals, error) {
	var subtotal, discount, tax decimal.Decimal
	for _, item := range items {
		parts, err := ComputeLineParts(item.Quantity, item.Rate, item.Discount, item.TaxRate)
		if err != nil {
			return Totals{}, err
		}
		subtotal = subtotal.Add(parts.Subtotal)
		discount = discount.Add(parts.Discount)
		tax = tax.Add(parts.Tax)
	}
	total := subtotal.Sub(discount).Add(tax)
	return Totals{
		Subtotal:       subtotal.Round(2),
		DiscountAmount: discount.Round(2),
		TaxAmount:      tax.Round(2),
		Total:          total.Round(2),
	}, nil
}
