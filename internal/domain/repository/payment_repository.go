package repository

import (
	"github.com/shopspring/decimal"

	"github.com/squarem/invoicing-api/internal/domain/entity"
)

// PaymentRepository is the append-only persistence port for payments.
// Payments are never updated or deleted individually; reconciliation happens
// by recomputing the invoice's amount_paid from the sum.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	// ListByInvoice returns payments newest-first (paid_on desc, created_at desc).
	ListByInvoice(invoiceID string) ([]*entity.Payment, error)
	SumByInvoice(invoiceID string) (decimal.Decimal, error)
}
