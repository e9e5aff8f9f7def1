package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/squarem/invoicing-api/internal/domain"
	domainbilling "github.com/squarem/invoicing-api/internal/domain/billing"
	"github.com/squarem/invoicing-api/internal/domain/repository"
)

// PDFUseCase assembles the data for invoice and receipt documents and hands
// it to the renderer.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyRepository
	clientRepo  repository.ClientRepository
	paymentRepo repository.PaymentRepository
	infoRepo    repository.PaymentInfoRepository
	generator   InvoicePDFGenerator

	now func() time.Time
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	clientRepo repository.ClientRepository,
	paymentRepo repository.PaymentRepository,
	infoRepo repository.PaymentInfoRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
		infoRepo:    infoRepo,
		generator:   generator,
		now:         time.Now,
	}
}

// InvoicePDF loads the full invoice and renders the printable document.
// Returns (pdfBytes, filename, nil) on success; rendering failures come back
// wrapped in domain.ErrRender so the caller can degrade to a non-PDF view.
func (uc *PDFUseCase) InvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(inv.CompanyID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load company: %w", err)
	}
	client, err := uc.clientRepo.GetByID(inv.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load client: %w", err)
	}
	if company == nil || client == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItems(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load items: %w", err)
	}
	info, err := uc.infoRepo.GetByInvoice(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load payment info: %w", err)
	}

	words := domainbilling.AmountInWords(inv.Total, inv.Currency)
	data := &InvoicePDFData{
		Invoice:       inv,
		Company:       company,
		Client:        client,
		Items:         items,
		PaymentInfo:   info,
		DisplayStatus: domainbilling.InvoiceDisplayStatus(inv, uc.now()),
		TotalInWords:  words.Words,
		UPIPayload:    domainbilling.UPIPayload(company.UPIID, company.Name, inv.Total, inv.Currency, inv.InvoiceNumber),
	}

	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invoice %s: %v", domain.ErrRender, inv.InvoiceNumber, err)
	}
	return pdfBytes, fmt.Sprintf("invoice_%s.pdf", inv.InvoiceNumber), nil
}

// ReceiptPDF renders the receipt for a single recorded payment.
func (uc *PDFUseCase) ReceiptPDF(ctx context.Context, paymentID string) ([]byte, string, error) {
	payment, err := uc.paymentRepo.GetByID(paymentID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load payment: %w", err)
	}
	if payment == nil {
		return nil, "", domain.ErrNotFound
	}
	inv, err := uc.invoiceRepo.GetByID(payment.InvoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(inv.CompanyID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load company: %w", err)
	}
	client, err := uc.clientRepo.GetByID(inv.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load client: %w", err)
	}
	if company == nil || client == nil {
		return nil, "", domain.ErrNotFound
	}

	words := domainbilling.AmountInWords(payment.Amount, inv.Currency)
	data := &ReceiptPDFData{
		Payment:       payment,
		Invoice:       inv,
		Company:       company,
		Client:        client,
		AmountInWords: words.Words,
	}

	pdfBytes, err := uc.generator.GenerateReceiptPDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("%w: receipt for %s: %v", domain.ErrRender, inv.InvoiceNumber, err)
	}
	return pdfBytes, fmt.Sprintf("receipt_%s_%s.pdf", inv.InvoiceNumber, payment.ID), nil
}
