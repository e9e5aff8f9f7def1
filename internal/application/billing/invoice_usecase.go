package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/squarem/invoicing-api/internal/application/dto"
	"github.com/squarem/invoicing-api/internal/domain"
	domainbilling "github.com/squarem/invoicing-api/internal/domain/billing"
	"github.com/squarem/invoicing-api/internal/domain/entity"
	"github.com/squarem/invoicing-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// allocateRetries bounds the retry loop around invoice-number allocation.
// The atomic counter should never collide, but a unique violation on the
// number column is still retried before surfacing as a conflict.
const allocateRetries = 3

// InvoiceUseCase orchestrates invoice creation, edits and reads. All writes
// that touch line items run inside one transaction together with the totals
// update, so stored items and stored totals can never diverge.
type InvoiceUseCase struct {
	txRunner    TxRunner
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyRepository
	clientRepo  repository.ClientRepository
	paymentRepo repository.PaymentRepository
	infoRepo    repository.PaymentInfoRepository

	now func() time.Time // injectable for deterministic tests
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(
	txRunner TxRunner,
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	clientRepo repository.ClientRepository,
	paymentRepo repository.PaymentRepository,
	infoRepo repository.PaymentInfoRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
		infoRepo:    infoRepo,
		now:         time.Now,
	}
}

// CreateInvoice creates the invoice header and its line items in one
// transaction: the number is allocated from the per-month counter, each line
// amount is computed, and the totals are aggregated before anything is
// persisted. A unique violation on the allocated number rolls the whole
// transaction back and retries.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CompanyID == "" {
		return nil, domain.NewValidationError("company_id", "is required")
	}
	if in.ClientID == "" {
		return nil, domain.NewValidationError("client_id", "is required")
	}
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError("items", "at least one line item is required")
	}

	invoiceDate, err := parseDate(in.InvoiceDate, "invoice_date")
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDate(in.DueDate, "due_date")
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = entity.StatusDraft
	}
	if !entity.ValidStatus(status) {
		return nil, domain.NewValidationError("status", "unknown status")
	}
	currency := in.Currency
	if currency == "" {
		currency = entity.CurrencyINR
	}
	if !entity.ValidCurrency(currency) {
		return nil, domain.NewValidationError("currency", "unsupported currency")
	}

	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	items, totals, err := uc.buildItems(in.Items)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	period := domainbilling.PeriodOf(now)
	inv := &entity.Invoice{
		ID:             uuid.New().String(),
		CompanyID:      in.CompanyID,
		ClientID:       in.ClientID,
		InvoiceDate:    invoiceDate,
		DueDate:        dueDate,
		Status:         status,
		Currency:       currency,
		Subtotal:       totals.Subtotal,
		DiscountAmount: totals.DiscountAmount,
		TaxAmount:      totals.TaxAmount,
		Total:          totals.Total,
		AmountPaid:     decimal.Zero,
		Notes:          in.Notes,
		Terms:          in.Terms,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var lastErr error
	for attempt := 0; attempt < allocateRetries; attempt++ {
		lastErr = uc.txRunner.RunInvoicing(ctx, func(
			invoiceRepo repository.InvoiceRepository,
			counterRepo repository.CounterRepository,
			_ repository.PaymentRepository,
		) error {
			seq, err := counterRepo.NextSequence(period)
			if err != nil {
				return err
			}
			inv.InvoiceNumber = domainbilling.FormatInvoiceNumber(period, seq)

			if err := invoiceRepo.Create(inv); err != nil {
				return err
			}
			for _, item := range items {
				item.InvoiceID = inv.ID
				if err := invoiceRepo.CreateItem(item); err != nil {
					return err
				}
			}
			return nil
		})
		if lastErr == nil {
			return uc.toResponse(inv, items, nil, nil, company, client), nil
		}
		if !errors.Is(lastErr, domain.ErrDuplicate) {
			return nil, lastErr
		}
	}
	return nil, domain.ErrConflict
}

// UpdateInvoice replaces the header fields and the full line-item set, then
// recomputes the totals, all within one transaction. The invoice number and
// amount_paid are untouched.
func (uc *InvoiceUseCase) UpdateInvoice(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError("items", "at least one line item is required")
	}

	invoiceDate, err := parseDate(in.InvoiceDate, "invoice_date")
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDate(in.DueDate, "due_date")
	if err != nil {
		return nil, err
	}
	if in.Status != "" {
		if !entity.ValidStatus(in.Status) {
			return nil, domain.NewValidationError("status", "unknown status")
		}
		inv.Status = in.Status
	}
	if in.Currency != "" {
		if !entity.ValidCurrency(in.Currency) {
			return nil, domain.NewValidationError("currency", "unsupported currency")
		}
		inv.Currency = in.Currency
	}

	items, totals, err := uc.buildItems(in.Items)
	if err != nil {
		return nil, err
	}

	inv.InvoiceDate = invoiceDate
	inv.DueDate = dueDate
	inv.Subtotal = totals.Subtotal
	inv.DiscountAmount = totals.DiscountAmount
	inv.TaxAmount = totals.TaxAmount
	inv.Total = totals.Total
	inv.Notes = in.Notes
	inv.Terms = in.Terms
	inv.UpdatedAt = uc.now()

	err = uc.txRunner.RunInvoicing(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		_ repository.CounterRepository,
		_ repository.PaymentRepository,
	) error {
		if err := invoiceRepo.DeleteItems(inv.ID); err != nil {
			return err
		}
		for _, item := range items {
			item.InvoiceID = inv.ID
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return invoiceRepo.Update(inv)
	})
	if err != nil {
		return nil, err
	}
	return uc.loadResponse(inv)
}

// GetInvoice returns the invoice with items, payments, payment info and all
// derived presentation fields (display status, words, UPI payload).
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return uc.loadResponse(inv)
}

// ListInvoices returns invoice summaries, optionally filtered by stored
// status or a number/client-name search. Display status is derived per row.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, status, query string, page dto.PageRequest) ([]*dto.InvoiceSummaryResponse, error) {
	if status != "" && !entity.ValidStatus(status) {
		return nil, domain.NewValidationError("status", "unknown status")
	}
	page.DefaultPage()
	invoices, err := uc.invoiceRepo.List(repository.InvoiceFilter{
		Status: status,
		Query:  query,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, err
	}
	today := uc.now()
	out := make([]*dto.InvoiceSummaryResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toSummary(inv, today))
	}
	return out, nil
}

// DeleteInvoice removes an invoice; items, payments and payment info go with
// it by cascade.
func (uc *InvoiceUseCase) DeleteInvoice(ctx context.Context, id string) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.Delete(id)
}

// MarkPaid settles an invoice manually: status becomes paid and amount_paid
// is raised to the total.
func (uc *InvoiceUseCase) MarkPaid(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	inv.Status = entity.StatusPaid
	inv.AmountPaid = inv.Total
	inv.UpdatedAt = uc.now()
	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}
	return uc.loadResponse(inv)
}

// Dashboard aggregates counters and recent invoices for the landing screen.
func (uc *InvoiceUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	stats, err := uc.invoiceRepo.Stats()
	if err != nil {
		return nil, err
	}
	recent, err := uc.invoiceRepo.Recent(10)
	if err != nil {
		return nil, err
	}
	today := uc.now()
	resp := &dto.DashboardResponse{
		TotalInvoices:  stats.TotalInvoices,
		TotalRevenue:   stats.TotalRevenue,
		PaidInvoices:   stats.PaidCount,
		UnpaidInvoices: stats.UnpaidCount,
		OverdueCount:   stats.OverdueCount,
		Recent:         make([]dto.InvoiceSummaryResponse, 0, len(recent)),
	}
	for _, inv := range recent {
		resp.Recent = append(resp.Recent, *toSummary(inv, today))
	}
	return resp, nil
}

// buildItems validates the line-item requests, computes each stored amount
// and the invoice totals. Nothing is persisted here.
func (uc *InvoiceUseCase) buildItems(in []dto.InvoiceItemRequest) ([]*entity.InvoiceItem, domainbilling.Totals, error) {
	items := make([]*entity.InvoiceItem, 0, len(in))
	for i, req := range in {
		if req.Description == "" {
			return nil, domainbilling.Totals{}, domain.NewValidationError("description", "is required")
		}
		unitType := req.UnitType
		if unitType == "" {
			unitType = entity.UnitNos
		}
		if !entity.ValidUnitType(unitType) {
			return nil, domainbilling.Totals{}, domain.NewValidationError("unit_type", "unknown unit type")
		}
		amount, err := domainbilling.LineAmount(req.Quantity, req.Rate, req.Discount, req.TaxRate)
		if err != nil {
			return nil, domainbilling.Totals{}, err
		}
		order := req.Order
		if order == 0 {
			order = i
		}
		items = append(items, &entity.InvoiceItem{
			ID:          uuid.New().String(),
			Description: req.Description,
			UnitType:    unitType,
			Quantity:    req.Quantity,
			Rate:        req.Rate,
			Discount:    req.Discount,
			TaxRate:     req.TaxRate,
			Amount:      amount,
			Order:       order,
		})
	}
	totals, err := domainbilling.ComputeTotals(items)
	if err != nil {
		return nil, domainbilling.Totals{}, err
	}
	return items, totals, nil
}

// loadResponse assembles the full detail response for an already-loaded
// invoice header.
func (uc *InvoiceUseCase) loadResponse(inv *entity.Invoice) (*dto.InvoiceResponse, error) {
	items, err := uc.invoiceRepo.GetItems(inv.ID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.ListByInvoice(inv.ID)
	if err != nil {
		return nil, err
	}
	info, err := uc.infoRepo.GetByInvoice(inv.ID)
	if err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(inv.CompanyID)
	if err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(inv.ClientID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(inv, items, payments, info, company, client), nil
}

func (uc *InvoiceUseCase) toResponse(
	inv *entity.Invoice,
	items []*entity.InvoiceItem,
	payments []*entity.Payment,
	info *entity.PaymentInfo,
	company *entity.Company,
	client *entity.Client,
) *dto.InvoiceResponse {
	today := uc.now()
	display := domainbilling.InvoiceDisplayStatus(inv, today)
	words := domainbilling.AmountInWords(inv.Total, inv.Currency)

	resp := &dto.InvoiceResponse{
		ID:                inv.ID,
		InvoiceNumber:     inv.InvoiceNumber,
		CompanyID:         inv.CompanyID,
		ClientID:          inv.ClientID,
		InvoiceDate:       inv.InvoiceDate.Format(dateLayout),
		DueDate:           inv.DueDate.Format(dateLayout),
		Status:            inv.Status,
		DisplayStatus:     display,
		StatusLabel:       domainbilling.StatusLabel(display),
		Currency:          inv.Currency,
		Subtotal:          inv.Subtotal,
		DiscountAmount:    inv.DiscountAmount,
		TaxAmount:         inv.TaxAmount,
		Total:             inv.Total,
		AmountPaid:        inv.AmountPaid,
		BalanceDue:        inv.BalanceDue(),
		TotalInWords:      words.Words,
		TotalInWordsExact: !words.Fallback,
		Notes:             inv.Notes,
		Terms:             inv.Terms,
		Items:             make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	if client != nil {
		resp.ClientName = client.Name
	}
	if company != nil {
		resp.UPIPayload = domainbilling.UPIPayload(company.UPIID, company.Name, inv.Total, inv.Currency, inv.InvoiceNumber)
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          item.ID,
			Description: item.Description,
			UnitType:    item.UnitType,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Discount:    item.Discount,
			TaxRate:     item.TaxRate,
			Amount:      item.Amount,
			Order:       item.Order,
		})
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, paymentToResponse(p))
	}
	if info != nil {
		resp.PaymentInfo = &dto.PaymentInfoResponse{
			InvoiceID:            info.InvoiceID,
			PaymentMethod:        info.PaymentMethod,
			PaymentTerms:         info.PaymentTerms,
			BankInstructions:     info.BankInstructions,
			SignaturePath:        info.SignaturePath,
			SignatoryName:        info.SignatoryName,
			SignatoryDesignation: info.SignatoryDesignation,
		}
	}
	return resp
}

func toSummary(inv *entity.Invoice, today time.Time) *dto.InvoiceSummaryResponse {
	return &dto.InvoiceSummaryResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientID:      inv.ClientID,
		InvoiceDate:   inv.InvoiceDate.Format(dateLayout),
		DueDate:       inv.DueDate.Format(dateLayout),
		Status:        inv.Status,
		DisplayStatus: domainbilling.InvoiceDisplayStatus(inv, today),
		Currency:      inv.Currency,
		Total:         inv.Total,
		AmountPaid:    inv.AmountPaid,
		BalanceDue:    inv.BalanceDue(),
	}
}

func parseDate(s, field string) (time.Time, error) {
	if s == "" {
		return time.Time{}, domain.NewValidationError(field, "is required (YYYY-MM-DD)")
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be a YYYY-MM-DD date")
	}
	return t, nil
}
