package repository

import "github.com/squarem/invoicing-api/internal/domain/entity"

// PaymentInfoRepository persists the one-to-one presentation block of an
// invoice (terms, bank instructions, signatory).
type PaymentInfoRepository interface {
	// Upsert creates the record on first write and updates it afterwards.
	Upsert(info *entity.PaymentInfo) error
	GetByInvoice(invoiceID string) (*entity.PaymentInfo, error)
}
