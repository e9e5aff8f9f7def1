package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/squarem/invoicing-api/internal/application/dto"
	"github.com/squarem/invoicing-api/internal/domain"
	"github.com/squarem/invoicing-api/internal/domain/entity"
	"github.com/squarem/invoicing-api/internal/domain/repository"
)

// PaymentUseCase is the payment ledger: payments are append-only events, and
// recording one recomputes the invoice's amount_paid and may auto-settle it.
type PaymentUseCase struct {
	txRunner    TxRunner
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository

	now func() time.Time
}

// NewPaymentUseCase builds the use case.
func NewPaymentUseCase(txRunner TxRunner, invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		now:         time.Now,
	}
}

// RecordPayment persists a payment and, in the same transaction, recomputes
// amount_paid as the sum over all payments of the invoice. When the invoice
// has a positive total and the sum covers it, the status auto-transitions to
// paid. The transition is one-directional: the ledger never reverts it.
func (uc *PaymentUseCase) RecordPayment(ctx context.Context, invoiceID string, in dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.NewValidationError("amount", "must be greater than zero")
	}
	method := in.Method
	if method == "" {
		method = entity.MethodCash
	}
	if !entity.ValidPaymentMethod(method) {
		return nil, domain.NewValidationError("method", "unknown payment method")
	}
	paidOn := uc.now()
	if in.PaidOn != "" {
		var err error
		paidOn, err = parseDate(in.PaidOn, "paid_on")
		if err != nil {
			return nil, err
		}
	}

	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	payment := &entity.Payment{
		ID:        uuid.New().String(),
		InvoiceID: inv.ID,
		Amount:    in.Amount,
		IsAdvance: in.IsAdvance,
		Method:    method,
		Reference: in.Reference,
		Note:      in.Note,
		PaidOn:    paidOn,
		CreatedAt: uc.now(),
	}

	err = uc.txRunner.RunInvoicing(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		_ repository.CounterRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		sum, err := paymentRepo.SumByInvoice(inv.ID)
		if err != nil {
			return err
		}
		inv.AmountPaid = sum
		if inv.Total.IsPositive() && sum.GreaterThanOrEqual(inv.Total) {
			inv.Status = entity.StatusPaid
		}
		inv.UpdatedAt = uc.now()
		return invoiceRepo.Update(inv)
	})
	if err != nil {
		return nil, err
	}

	return &dto.RecordPaymentResponse{
		Payment:       paymentToResponse(payment),
		InvoiceID:     inv.ID,
		AmountPaid:    inv.AmountPaid,
		BalanceDue:    inv.BalanceDue(),
		InvoiceStatus: inv.Status,
	}, nil
}

// ListPayments returns the payments of an invoice, newest first.
func (uc *PaymentUseCase) ListPayments(ctx context.Context, invoiceID string) ([]dto.PaymentResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	payments, err := uc.paymentRepo.ListByInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, paymentToResponse(p))
	}
	return out, nil
}

func paymentToResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:        p.ID,
		InvoiceID: p.InvoiceID,
		Amount:    p.Amount,
		IsAdvance: p.IsAdvance,
		Method:    p.Method,
		Reference: p.Reference,
		Note:      p.Note,
		PaidOn:    p.PaidOn.Format(dateLayout),
	}
}
