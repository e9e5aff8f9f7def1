package postgres

import (
	"context"
	"fmt"

	"github.com/squarem/invoicing-api/internal/domain"
	"github.com/squarem/invoicing-api/internal/domain/entity"
	"github.com/squarem/invoicing-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implements the ClientRepository port over PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository builds the persistence adapter for customers.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, name, company_name, email, phone,
	billing_address, billing_city, billing_state, billing_country, billing_postal_code,
	shipping_address, shipping_city, shipping_state, shipping_country, shipping_postal_code,
	gstin, created_at, updated_at`

// Create persists a new client.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.CompanyName, client.Email, client.Phone,
		client.BillingAddress, client.BillingCity, client.BillingState, client.BillingCountry, client.BillingPostalCode,
		client.ShippingAddress, client.ShippingCity, client.ShippingState, client.ShippingCountry, client.ShippingPostalCode,
		client.GSTIN, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// Update replaces all mutable fields of a client.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET
			name = $2, company_name = $3, email = $4, phone = $5,
			billing_address = $6, billing_city = $7, billing_state = $8, billing_country = $9, billing_postal_code = $10,
			shipping_address = $11, shipping_city = $12, shipping_state = $13, shipping_country = $14, shipping_postal_code = $15,
			gstin = $16, updated_at = $17
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.CompanyName, client.Email, client.Phone,
		client.BillingAddress, client.BillingCity, client.BillingState, client.BillingCountry, client.BillingPostalCode,
		client.ShippingAddress, client.ShippingCity, client.ShippingState, client.ShippingCountry, client.ShippingPostalCode,
		client.GSTIN, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a client; its invoices go with it by cascade.
func (r *ClientRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID fetches a client by ID; (nil, nil) when absent.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.CompanyName, &c.Email, &c.Phone,
		&c.BillingAddress, &c.BillingCity, &c.BillingState, &c.BillingCountry, &c.BillingPostalCode,
		&c.ShippingAddress, &c.ShippingCity, &c.ShippingState, &c.ShippingCountry, &c.ShippingPostalCode,
		&c.GSTIN, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// List returns clients ordered by name with pagination.
func (r *ClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY name, created_at LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(
			&c.ID, &c.Name, &c.CompanyName, &c.Email, &c.Phone,
			&c.BillingAddress, &c.BillingCity, &c.BillingState, &c.BillingCountry, &c.BillingPostalCode,
			&c.ShippingAddress, &c.ShippingCity, &c.ShippingState, &c.ShippingCountry, &c.ShippingPostalCode,
			&c.GSTIN, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
