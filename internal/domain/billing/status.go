package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/squarem/invoicing-api/internal/domain/entity"
)

// DisplayStatus derives the status shown to users from the stored status,
// the due date and the payment state. Pure function of its inputs; it must be
// evaluated on every read ("today" changes), never cached or persisted.
//
// Precedence: paid > cancelled > overdue > unpaid > stored status.
func DisplayStatus(status string, dueDate time.Time, amountPaid, total decimal.Decimal, today time.Time) string {
	if status == entity.StatusPaid {
		return entity.StatusPaid
	}
	if status == entity.StatusCancelled {
		return entity.StatusCancelled
	}
	if beforeDay(dueDate, today) {
		return entity.StatusOverdue
	}
	if amountPaid.LessThan(total) {
		return entity.StatusUnpaid
	}
	return status
}

// InvoiceDisplayStatus derives the display status for an invoice entity.
func InvoiceDisplayStatus(inv *entity.Invoice, today time.Time) string {
	return DisplayStatus(inv.Status, inv.DueDate, inv.AmountPaid, inv.Total, today)
}

// StatusLabel maps a display status to its human-readable label.
func StatusLabel(status string) string {
	switch status {
	case entity.StatusPaid:
		return "Paid"
	case entity.StatusUnpaid:
		return "Unpaid"
	case entity.StatusOverdue:
		return "Overdue"
	case entity.StatusDraft:
		return "Draft"
	case entity.StatusSent:
		return "Sent"
	case entity.StatusCancelled:
		return "Cancelled"
	}
	return status
}

// beforeDay compares calendar days, ignoring the time of day.
func beforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
