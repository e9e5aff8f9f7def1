package postgres

import (
	"context"
	"fmt"

	"github.com/squarem/invoicing-api/internal/domain"
	"github.com/squarem/invoicing-api/internal/domain/entity"
	"github.com/squarem/invoicing-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implements the CompanyRepository port over PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository builds the persistence adapter for issuer profiles.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, address, city, state, country, postal_code,
	phone, email, website, logo_path,
	bank_name, bank_branch, account_number, ifsc_code, upi_id,
	gstin, pan, created_at, updated_at`

// Create persists a new company.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Address, company.City, company.State,
		company.Country, company.PostalCode, company.Phone, company.Email,
		company.Website, company.LogoPath,
		company.BankName, company.BankBranch, company.AccountNumber, company.IFSCCode, company.UPIID,
		company.GSTIN, company.PAN, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// Update replaces all mutable fields of a company.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET
			name = $2, address = $3, city = $4, state = $5, country = $6,
			postal_code = $7, phone = $8, email = $9, website = $10, logo_path = $11,
			bank_name = $12, bank_branch = $13, account_number = $14, ifsc_code = $15, upi_id = $16,
			gstin = $17, pan = $18, updated_at = $19
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Address, company.City, company.State,
		company.Country, company.PostalCode, company.Phone, company.Email,
		company.Website, company.LogoPath,
		company.BankName, company.BankBranch, company.AccountNumber, company.IFSCCode, company.UPIID,
		company.GSTIN, company.PAN, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a company; its invoices go with it by cascade.
func (r *CompanyRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID fetches a company by ID; (nil, nil) when absent.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Address, &c.City, &c.State, &c.Country, &c.PostalCode,
		&c.Phone, &c.Email, &c.Website, &c.LogoPath,
		&c.BankName, &c.BankBranch, &c.AccountNumber, &c.IFSCCode, &c.UPIID,
		&c.GSTIN, &c.PAN, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// List returns companies newest first with pagination.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Address, &c.City, &c.State, &c.Country, &c.PostalCode,
			&c.Phone, &c.Email, &c.Website, &c.LogoPath,
			&c.BankName, &c.BankBranch, &c.AccountNumber, &c.IFSCCode, &c.UPIID,
			&c.GSTIN, &c.PAN, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
