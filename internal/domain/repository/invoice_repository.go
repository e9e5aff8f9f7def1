package repository

import (
	"github.com/shopspring/decimal"

	"github.com/squarem/invoicing-api/internal/domain/entity"
)

// InvoiceFilter narrows List results. Status filters on the *stored* status;
// Query matches the invoice number or the client name (case-insensitive).
type InvoiceFilter struct {
	Status string
	Query  string
	Limit  int
	Offset int
}

// InvoiceStats backs the dashboard: counts and revenue over all invoices.
type InvoiceStats struct {
	TotalInvoices int
	TotalRevenue  decimal.Decimal
	PaidCount     int
	UnpaidCount   int
	OverdueCount  int // due date past, stored status draft or sent
}

// InvoiceRepository is the persistence port for invoices and their line
// items. Deleting an invoice cascades to items, payments and payment info.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	// Update persists the mutable header fields: dates, status, currency,
	// derived totals, amount_paid, notes and terms. The invoice number is
	// immutable once assigned.
	Update(invoice *entity.Invoice) error
	Delete(id string) error
	GetByID(id string) (*entity.Invoice, error)
	List(filter InvoiceFilter) ([]*entity.Invoice, error)
	Stats() (*InvoiceStats, error)
	Recent(limit int) ([]*entity.Invoice, error)

	CreateItem(item *entity.InvoiceItem) error
	// DeleteItems removes all line items of an invoice (used by the
	// replace-items edit flow before reinserting).
	DeleteItems(invoiceID string) error
	GetItems(invoiceID string) ([]*entity.InvoiceItem, error)
}
