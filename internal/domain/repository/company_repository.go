package repository

import "github.com/squarem/invoicing-api/internal/domain/entity"

// CompanyRepository is the persistence port for invoice issuer profiles.
type CompanyRepository interface {
	Create(company *entity.Company) error
	Update(company *entity.Company) error
	// Delete cascades to the company's invoices.
	Delete(id string) error
	GetByID(id string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
}
