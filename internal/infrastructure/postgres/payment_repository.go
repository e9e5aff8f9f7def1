package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/squarem/invoicing-api/internal/domain/entity"
	"github.com/squarem/invoicing-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implements the append-only PaymentRepository port. Pass a pool
// or tx (Querier); recording runs inside the invoicing transaction.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository builds the adapter.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persists a payment. There is no Update or Delete: the ledger only
// grows.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, invoice_id, amount, is_advance, method, reference, note, paid_on, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.InvoiceID, payment.Amount, payment.IsAdvance,
		payment.Method, payment.Reference, payment.Note, payment.PaidOn, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID fetches one payment; (nil, nil) when absent.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `
		SELECT id, invoice_id, amount, is_advance, method, reference, note, paid_on, created_at
		FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.InvoiceID, &p.Amount, &p.IsAdvance, &p.Method,
		&p.Reference, &p.Note, &p.PaidOn, &p.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// ListByInvoice returns the payments of an invoice, newest first.
func (r *PaymentRepo) ListByInvoice(invoiceID string) ([]*entity.Payment, error) {
	query := `
		SELECT id, invoice_id, amount, is_advance, method, reference, note, paid_on, created_at
		FROM payments WHERE invoice_id = $1 ORDER BY paid_on DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(
			&p.ID, &p.InvoiceID, &p.Amount, &p.IsAdvance, &p.Method,
			&p.Reference, &p.Note, &p.PaidOn, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SumByInvoice totals all payments of an invoice; zero when there are none.
func (r *PaymentRepo) SumByInvoice(invoiceID string) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE invoice_id = $1`
	var sum decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, invoiceID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum payments: %w", err)
	}
	return sum, nil
}
