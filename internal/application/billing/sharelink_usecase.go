package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/squarem/invoicing-api/internal/application/dto"
	"github.com/squarem/invoicing-api/internal/domain"
	"github.com/squarem/invoicing-api/internal/domain/repository"
	pkgjwt "github.com/squarem/invoicing-api/pkg/jwt"
)

// ShareLinkConfig for signed public invoice links.
type ShareLinkConfig struct {
	Secret  string
	Issuer  string
	BaseURL string        // e.g. https://billing.example.com
	TTL     time.Duration // zero means DefaultShareTTL
}

// DefaultShareTTL keeps share links valid for a week.
const DefaultShareTTL = 7 * 24 * time.Hour

// ShareLinkUseCase issues and verifies signed public links to invoice PDFs,
// so an invoice can be sent to a client without an account.
type ShareLinkUseCase struct {
	invoiceRepo repository.InvoiceRepository
	cfg         ShareLinkConfig
}

// NewShareLinkUseCase builds the use case.
func NewShareLinkUseCase(invoiceRepo repository.InvoiceRepository, cfg ShareLinkConfig) *ShareLinkUseCase {
	if cfg.TTL == 0 {
		cfg.TTL = DefaultShareTTL
	}
	return &ShareLinkUseCase{invoiceRepo: invoiceRepo, cfg: cfg}
}

// Issue creates a share link for an existing invoice.
func (uc *ShareLinkUseCase) Issue(ctx context.Context, invoiceID string) (*dto.ShareLinkResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	token, expiresAt, err := pkgjwt.GenerateShareToken(uc.cfg.Secret, inv.ID, uc.cfg.Issuer, uc.cfg.TTL)
	if err != nil {
		return nil, fmt.Errorf("share link: sign token: %w", err)
	}
	return &dto.ShareLinkResponse{
		Token:     token,
		URL:       fmt.Sprintf("%s/share/%s", uc.cfg.BaseURL, token),
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}, nil
}

// Verify checks a share token and returns the invoice id it grants access
// to. Invalid, expired or mis-scoped tokens come back as ErrForbidden.
func (uc *ShareLinkUseCase) Verify(ctx context.Context, token string) (string, error) {
	invoiceID, err := pkgjwt.ParseShareToken(uc.cfg.Secret, token)
	if err != nil {
		return "", domain.ErrForbidden
	}
	return invoiceID, nil
}
