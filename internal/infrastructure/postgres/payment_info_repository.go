package postgres

import (
	"context"
	"fmt"

	"github.com/squarem/invoicing-api/internal/domain/entity"
	"github.com/squarem/invoicing-api/internal/domain/repository"
)

var _ repository.PaymentInfoRepository = (*PaymentInfoRepo)(nil)

// PaymentInfoRepo implements the PaymentInfoRepository port over PostgreSQL.
type PaymentInfoRepo struct {
	q Querier
}

// NewPaymentInfoRepository builds the adapter.
func NewPaymentInfoRepository(q Querier) *PaymentInfoRepo {
	return &PaymentInfoRepo{q: q}
}

// Upsert creates the record on first write and replaces it afterwards. The
// unique index on invoice_id backs the conflict target.
func (r *PaymentInfoRepo) Upsert(info *entity.PaymentInfo) error {
	query := `
		INSERT INTO payment_info (id, invoice_id, payment_method, payment_terms, bank_instructions,
			signature_path, signatory_name, signatory_designation, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (invoice_id) DO UPDATE SET
			payment_method = EXCLUDED.payment_method,
			payment_terms = EXCLUDED.payment_terms,
			bank_instructions = EXCLUDED.bank_instructions,
			signature_path = EXCLUDED.signature_path,
			signatory_name = EXCLUDED.signatory_name,
			signatory_designation = EXCLUDED.signatory_designation,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		info.ID, info.InvoiceID, info.PaymentMethod, info.PaymentTerms, info.BankInstructions,
		info.SignaturePath, info.SignatoryName, info.SignatoryDesignation,
		info.CreatedAt, info.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert payment info: %w", err)
	}
	return nil
}

// GetByInvoice fetches the payment info of an invoice; (nil, nil) when absent.
func (r *PaymentInfoRepo) GetByInvoice(invoiceID string) (*entity.PaymentInfo, error) {
	query := `
		SELECT id, invoice_id, payment_method, payment_terms, bank_instructions,
		       signature_path, signatory_name, signatory_designation, created_at, updated_at
		FROM payment_info WHERE invoice_id = $1`
	var info entity.PaymentInfo
	err := r.q.QueryRow(context.Background(), query, invoiceID).Scan(
		&info.ID, &info.InvoiceID, &info.PaymentMethod, &info.PaymentTerms, &info.BankInstructions,
		&info.SignaturePath, &info.SignatoryName, &info.SignatoryDesignation,
		&info.CreatedAt, &info.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment info: %w", err)
	}
	return &info, nil
}
