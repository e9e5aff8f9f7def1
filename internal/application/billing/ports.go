package billing

import (
	"context"

	"github.com/squarem/invoicing-api/internal/domain/entity"
	"github.com/squarem/invoicing-api/internal/domain/repository"
)

// TxRunner executes a function inside one database transaction with
// repositories bound to that transaction. Item writes and total updates, or a
// payment insert and the amount_paid update, must commit or roll back as one
// unit; partial failures never leave totals inconsistent with stored rows.
type TxRunner interface {
	RunInvoicing(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		counterRepo repository.CounterRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// InvoicePDFData is everything the renderer needs for one invoice document.
type InvoicePDFData struct {
	Invoice       *entity.Invoice
	Company       *entity.Company
	Client        *entity.Client
	Items         []*entity.InvoiceItem
	PaymentInfo   *entity.PaymentInfo // may be nil
	DisplayStatus string
	TotalInWords  string
	UPIPayload    string // empty when the company has no UPI id
}

// ReceiptPDFData is everything the renderer needs for one payment receipt.
type ReceiptPDFData struct {
	Payment       *entity.Payment
	Invoice       *entity.Invoice
	Company       *entity.Company
	Client        *entity.Client
	AmountInWords string
}

// InvoicePDFGenerator renders invoice and receipt documents. Failures are
// reported, not fatal: callers map them to a graceful non-PDF response.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, data *InvoicePDFData) ([]byte, error)
	GenerateReceiptPDF(ctx context.Context, data *ReceiptPDFData) ([]byte, error)
}
