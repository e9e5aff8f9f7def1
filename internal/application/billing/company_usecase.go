package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/squarem/invoicing-api/internal/application/dto"
	"github.com/squarem/invoicing-api/internal/domain"
	"github.com/squarem/invoicing-api/internal/domain/entity"
	"github.com/squarem/invoicing-api/internal/domain/repository"
)

// CompanyUseCase manages invoice issuer profiles.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create registers a new company. Name and address are required.
func (uc *CompanyUseCase) Create(in dto.CompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	if in.Address == "" {
		return nil, domain.NewValidationError("address", "is required")
	}
	now := time.Now()
	company := companyFromRequest(in)
	company.ID = uuid.New().String()
	if company.Country == "" {
		company.Country = "India"
	}
	company.CreatedAt = now
	company.UpdatedAt = now

	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// Update replaces the mutable fields of an existing company.
func (uc *CompanyUseCase) Update(id string, in dto.CompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	company := companyFromRequest(in)
	company.ID = existing.ID
	company.CreatedAt = existing.CreatedAt
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// Delete removes a company and, by cascade, its invoices.
func (uc *CompanyUseCase) Delete(id string) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// GetByID fetches a single company.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return companyToResponse(company), nil
}

// List returns companies, newest first.
func (uc *CompanyUseCase) List(page dto.PageRequest) ([]*dto.CompanyResponse, error) {
	page.DefaultPage()
	companies, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, companyToResponse(c))
	}
	return out, nil
}

func companyFromRequest(in dto.CompanyRequest) *entity.Company {
	return &entity.Company{
		Name:          in.Name,
		Address:       in.Address,
		City:          in.City,
		State:         in.State,
		Country:       in.Country,
		PostalCode:    in.PostalCode,
		Phone:         in.Phone,
		Email:         in.Email,
		Website:       in.Website,
		LogoPath:      in.LogoPath,
		BankName:      in.BankName,
		BankBranch:    in.BankBranch,
		AccountNumber: in.AccountNumber,
		IFSCCode:      in.IFSCCode,
		UPIID:         in.UPIID,
		GSTIN:         in.GSTIN,
		PAN:           in.PAN,
	}
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:            c.ID,
		Name:          c.Name,
		Address:       c.Address,
		City:          c.City,
		State:         c.State,
		Country:       c.Country,
		PostalCode:    c.PostalCode,
		Phone:         c.Phone,
		Email:         c.Email,
		Website:       c.Website,
		LogoPath:      c.LogoPath,
		BankName:      c.BankName,
		BankBranch:    c.BankBranch,
		AccountNumber: c.AccountNumber,
		IFSCCode:      c.IFSCCode,
		UPIID:         c.UPIID,
		GSTIN:         c.GSTIN,
		PAN:           c.PAN,
	}
}
