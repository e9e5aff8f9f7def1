package repository

import "github.com/squarem/invoicing-api/internal/domain/entity"

// ClientRepository is the persistence port for customers.
type ClientRepository interface {
	Create(client *entity.Client) error
	Update(client *entity.Client) error
	// Delete cascades to the client's invoices.
	Delete(id string) error
	GetByID(id string) (*entity.Client, error)
	List(limit, offset int) ([]*entity.Client, error)
}
