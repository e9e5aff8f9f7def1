package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/squarem/invoicing-api/internal/domain"
	"github.com/squarem/invoicing-api/internal/domain/entity"
	"github.com/squarem/invoicing-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements the InvoiceRepository port (usable with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, invoice_number, company_id, client_id,
	invoice_date, due_date, status, currency,
	subtotal, discount_amount, tax_amount, total, amount_paid,
	notes, terms, created_at, updated_at`

// Create persists the invoice header. A duplicate invoice number surfaces as
// domain.ErrDuplicate so the allocation loop can retry.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNumber, invoice.CompanyID, invoice.ClientID,
		invoice.InvoiceDate, invoice.DueDate, invoice.Status, invoice.Currency,
		invoice.Subtotal, invoice.DiscountAmount, invoice.TaxAmount, invoice.Total, invoice.AmountPaid,
		invoice.Notes, invoice.Terms, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number %s taken: %w", invoice.InvoiceNumber, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update persists the mutable header fields. The invoice number is immutable
// and deliberately absent from the SET list.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET
			invoice_date = $2, due_date = $3, status = $4, currency = $5,
			subtotal = $6, discount_amount = $7, tax_amount = $8, total = $9, amount_paid = $10,
			notes = $11, terms = $12, updated_at = $13
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		invoice.ID,
		invoice.InvoiceDate, invoice.DueDate, invoice.Status, invoice.Currency,
		invoice.Subtotal, invoice.DiscountAmount, invoice.TaxAmount, invoice.Total, invoice.AmountPaid,
		invoice.Notes, invoice.Terms, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an invoice; items, payments and payment info cascade.
func (r *InvoiceRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID fetches an invoice header by ID; (nil, nil) when absent.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.CompanyID, &inv.ClientID,
		&inv.InvoiceDate, &inv.DueDate, &inv.Status, &inv.Currency,
		&inv.Subtotal, &inv.DiscountAmount, &inv.TaxAmount, &inv.Total, &inv.AmountPaid,
		&inv.Notes, &inv.Terms, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// List returns invoice headers newest first. Status filters the stored
// status; Query matches the invoice number or client name, case-insensitive.
func (r *InvoiceRepo) List(filter repository.InvoiceFilter) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + qualify(invoiceColumns, "i") + `
		FROM invoices i
		JOIN clients c ON c.id = i.client_id
		WHERE ($1 = '' OR i.status = $1)
		  AND ($2 = '' OR i.invoice_number ILIKE '%' || $2 || '%' OR c.name ILIKE '%' || $2 || '%')
		ORDER BY i.created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, filter.Status, escapeLike(filter.Query), filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoices(rows)
}

// Stats aggregates the dashboard counters in one round trip.
func (r *InvoiceRepo) Stats() (*repository.InvoiceStats, error) {
	const query = `
		SELECT COUNT(*),
		       COALESCE(SUM(total), 0),
		       COUNT(*) FILTER (WHERE status = 'paid'),
		       COUNT(*) FILTER (WHERE status <> 'paid'),
		       COUNT(*) FILTER (WHERE status IN ('draft', 'sent') AND due_date < CURRENT_DATE)
		FROM invoices`
	var s repository.InvoiceStats
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.TotalInvoices, &s.TotalRevenue, &s.PaidCount, &s.UnpaidCount, &s.OverdueCount,
	)
	if err != nil {
		return nil, fmt.Errorf("invoice stats: %w", err)
	}
	return &s, nil
}

// Recent returns the latest invoices for the dashboard.
func (r *InvoiceRepo) Recent(limit int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoices(rows)
}

// CreateItem persists one line item.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (id, invoice_id, description, unit_type, quantity, rate, discount, tax_rate, amount, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, item.Description, item.UnitType,
		item.Quantity, item.Rate, item.Discount, item.TaxRate, item.Amount, item.Order,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// DeleteItems removes all line items of an invoice (replace-items edit flow).
func (r *InvoiceRepo) DeleteItems(invoiceID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoice_items WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return fmt.Errorf("delete invoice items: %w", err)
	}
	return nil
}

// GetItems returns the line items of an invoice in display order.
func (r *InvoiceRepo) GetItems(invoiceID string) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, description, unit_type, quantity, rate, discount, tax_rate, amount, sort_order
		FROM invoice_items WHERE invoice_id = $1 ORDER BY sort_order, id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()

	var list []*entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(
			&it.ID, &it.InvoiceID, &it.Description, &it.UnitType,
			&it.Quantity, &it.Rate, &it.Discount, &it.TaxRate, &it.Amount, &it.Order,
		); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func scanInvoices(rows pgx.Rows) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.InvoiceNumber, &inv.CompanyID, &inv.ClientID,
			&inv.InvoiceDate, &inv.DueDate, &inv.Status, &inv.Currency,
			&inv.Subtotal, &inv.DiscountAmount, &inv.TaxAmount, &inv.Total, &inv.AmountPaid,
			&inv.Notes, &inv.Terms, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// qualify prefixes every column in a comma-separated list with a table alias.
func qualify(columns, alias string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
