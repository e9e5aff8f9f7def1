package entity

import "time"

// Company represents the invoice issuer profile (address, bank, tax ids).
type Company struct {
	ID         string
	Name       string
	Address    string
	City       string
	State      string
	Country    string
	PostalCode string
	Phone      string
	Email      string
	Website    string
	LogoPath   string // stored path only; file storage is outside the core

	// Bank details printed on the invoice
	BankName      string
	BankBranch    string
	AccountNumber string
	IFSCCode      string

	UPIID string // UPI address used to build the payment QR

	// Tax ids (India)
	GSTIN string
	PAN   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
