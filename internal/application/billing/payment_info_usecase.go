package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/squarem/invoicing-api/internal/application/dto"
	"github.com/squarem/invoicing-api/internal/domain"
	"github.com/squarem/invoicing-api/internal/domain/entity"
	"github.com/squarem/invoicing-api/internal/domain/repository"
)

// PaymentInfoUseCase maintains the presentation block printed on an invoice.
type PaymentInfoUseCase struct {
	invoiceRepo repository.InvoiceRepository
	infoRepo    repository.PaymentInfoRepository
}

// NewPaymentInfoUseCase builds the use case.
func NewPaymentInfoUseCase(invoiceRepo repository.InvoiceRepository, infoRepo repository.PaymentInfoRepository) *PaymentInfoUseCase {
	return &PaymentInfoUseCase{invoiceRepo: invoiceRepo, infoRepo: infoRepo}
}

// Upsert creates or replaces the payment info of an invoice.
func (uc *PaymentInfoUseCase) Upsert(ctx context.Context, invoiceID string, in dto.PaymentInfoRequest) (*dto.PaymentInfoResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	info := &entity.PaymentInfo{
		InvoiceID:            invoiceID,
		PaymentMethod:        in.PaymentMethod,
		PaymentTerms:         in.PaymentTerms,
		BankInstructions:     in.BankInstructions,
		SignaturePath:        in.SignaturePath,
		SignatoryName:        in.SignatoryName,
		SignatoryDesignation: in.SignatoryDesignation,
		UpdatedAt:            now,
	}
	existing, err := uc.infoRepo.GetByInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		info.ID = existing.ID
		info.CreatedAt = existing.CreatedAt
	} else {
		info.ID = uuid.New().String()
		info.CreatedAt = now
	}

	if err := uc.infoRepo.Upsert(info); err != nil {
		return nil, err
	}
	return &dto.PaymentInfoResponse{
		InvoiceID:            info.InvoiceID,
		PaymentMethod:        info.PaymentMethod,
		PaymentTerms:         info.PaymentTerms,
		BankInstructions:     info.BankInstructions,
		SignaturePath:        info.SignaturePath,
		SignatoryName:        info.SignatoryName,
		SignatoryDesignation: info.SignatoryDesignation,
	}, nil
}
