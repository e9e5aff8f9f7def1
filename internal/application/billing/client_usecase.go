package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/squarem/invoicing-api/internal/application/dto"
	"github.com/squarem/invoicing-api/internal/domain"
	"github.com/squarem/invoicing-api/internal/domain/entity"
	"github.com/squarem/invoicing-api/internal/domain/repository"
)

// ClientUseCase manages customers.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase builds the use case.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create registers a new client. Name and billing address are required.
func (uc *ClientUseCase) Create(in dto.ClientRequest) (*dto.ClientResponse, error) {
	if err := validateClient(in); err != nil {
		return nil, err
	}
	now := time.Now()
	client := clientFromRequest(in)
	client.ID = uuid.New().String()
	if client.BillingCountry == "" {
		client.BillingCountry = "India"
	}
	client.CreatedAt = now
	client.UpdatedAt = now

	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

// Update replaces the mutable fields of an existing client.
func (uc *ClientUseCase) Update(id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	if err := validateClient(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	client := clientFromRequest(in)
	client.ID = existing.ID
	client.CreatedAt = existing.CreatedAt
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

// Delete removes a client and, by cascade, their invoices.
func (uc *ClientUseCase) Delete(id string) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// GetByID fetches a single client.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return clientToResponse(client), nil
}

// List returns clients, newest first.
func (uc *ClientUseCase) List(page dto.PageRequest) ([]*dto.ClientResponse, error) {
	page.DefaultPage()
	clients, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, clientToResponse(c))
	}
	return out, nil
}

func validateClient(in dto.ClientRequest) error {
	if in.Name == "" {
		return domain.NewValidationError("name", "is required")
	}
	if in.BillingAddress == "" {
		return domain.NewValidationError("billing_address", "is required")
	}
	return nil
}

func clientFromRequest(in dto.ClientRequest) *entity.Client {
	return &entity.Client{
		Name:               in.Name,
		CompanyName:        in.CompanyName,
		Email:              in.Email,
		Phone:              in.Phone,
		BillingAddress:     in.BillingAddress,
		BillingCity:        in.BillingCity,
		BillingState:       in.BillingState,
		BillingCountry:     in.BillingCountry,
		BillingPostalCode:  in.BillingPostalCode,
		ShippingAddress:    in.ShippingAddress,
		ShippingCity:       in.ShippingCity,
		ShippingState:      in.ShippingState,
		ShippingCountry:    in.ShippingCountry,
		ShippingPostalCode: in.ShippingPostalCode,
		GSTIN:              in.GSTIN,
	}
}

func clientToResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:                  c.ID,
		Name:                c.Name,
		CompanyName:         c.CompanyName,
		Email:               c.Email,
		Phone:               c.Phone,
		BillingAddress:      c.BillingAddress,
		BillingCity:         c.BillingCity,
		BillingState:        c.BillingState,
		BillingCountry:      c.BillingCountry,
		BillingPostalCode:   c.BillingPostalCode,
		ShippingAddress:     c.ShippingAddress,
		ShippingCity:        c.ShippingCity,
		ShippingState:       c.ShippingState,
		ShippingCountry:     c.ShippingCountry,
		ShippingPostalCode:  c.ShippingPostalCode,
		GSTIN:               c.GSTIN,
		FullBillingAddress:  c.FullBillingAddress(),
		FullShippingAddress: c.FullShippingAddress(),
	}
}
