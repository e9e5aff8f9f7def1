package entity

import "time"

// PaymentInfo holds presentation data printed on the invoice: payment terms,
// bank instructions and the signatory block. One-to-one with Invoice; no
// computed invariants.
type PaymentInfo struct {
	ID        string
	InvoiceID string

	PaymentMethod    string
	PaymentTerms     string
	BankInstructions string

	SignaturePath        string // stored path only
	SignatoryName        string
	SignatoryDesignation string

	CreatedAt time.Time
	UpdatedAt time.Time
}
