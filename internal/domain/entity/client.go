package entity

import (
	"strings"
	"time"
)

// Client represents a customer that invoices are issued to.
type Client struct {
	ID          string
	Name        string
	CompanyName string
	Email       string
	Phone       string

	// Billing address
	BillingAddress    string
	BillingCity       string
	BillingState      string
	BillingCountry    string
	BillingPostalCode string

	// Shipping address (optional; falls back to billing)
	ShippingAddress    string
	ShippingCity       string
	ShippingState      string
	ShippingCountry    string
	ShippingPostalCode string

	GSTIN string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullBillingAddress returns the billing address as a single comma-joined line.
func (c *Client) FullBillingAddress() string {
	return joinAddress(c.BillingAddress, c.BillingCity, c.BillingState, c.BillingPostalCode, c.BillingCountry)
}

// FullShippingAddress returns the shipping address, or the billing address
// when no shipping address was captured.
func (c *Client) FullShippingAddress() string {
	if c.ShippingAddress == "" {
		return c.FullBillingAddress()
	}
	return joinAddress(c.ShippingAddress, c.ShippingCity, c.ShippingState, c.ShippingPostalCode, c.ShippingCountry)
}

func joinAddress(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}
