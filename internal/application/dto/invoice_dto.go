package dto

import "github.com/shopspring/decimal"

// InvoiceItemRequest one line of an invoice create/update body.
type InvoiceItemRequest struct {
	Description string          `json:"description"`
	UnitType    string          `json:"unit_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Discount    decimal.Decimal `json:"discount"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Order       int             `json:"order"`
}

// CreateInvoiceRequest body for POST /api/invoices. The invoice number is
// allocated server-side and the totals are derived; neither can be supplied.
type CreateInvoiceRequest struct {
	CompanyID   string               `json:"company_id"`
	ClientID    string               `json:"client_id"`
	InvoiceDate string               `json:"invoice_date"` // YYYY-MM-DD
	DueDate     string               `json:"due_date"`     // YYYY-MM-DD
	Status      string               `json:"status,omitempty"`
	Currency    string               `json:"currency,omitempty"`
	Notes       string               `json:"notes,omitempty"`
	Terms       string               `json:"terms,omitempty"`
	Items       []InvoiceItemRequest `json:"items"`
}

// UpdateInvoiceRequest body for PUT /api/invoices/:id. Items replace the
// existing line items wholesale; totals are recomputed in the same
// transaction.
type UpdateInvoiceRequest struct {
	InvoiceDate string               `json:"invoice_date"`
	DueDate     string               `json:"due_date"`
	Status      string               `json:"status,omitempty"`
	Currency    string               `json:"currency,omitempty"`
	Notes       string               `json:"notes,omitempty"`
	Terms       string               `json:"terms,omitempty"`
	Items       []InvoiceItemRequest `json:"items"`
}

// InvoiceItemResponse line item in responses.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	UnitType    string          `json:"unit_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Discount    decimal.Decimal `json:"discount"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Amount      decimal.Decimal `json:"amount"`
	Order       int             `json:"order"`
}

// InvoiceResponse full invoice for detail endpoints. DisplayStatus is derived
// at read time and may differ from Status (e.g. overdue).
type InvoiceResponse struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	CompanyID     string `json:"company_id"`
	ClientID      string `json:"client_id"`
	ClientName    string `json:"client_name,omitempty"`

	InvoiceDate string `json:"invoice_date"`
	DueDate     string `json:"due_date"`

	Status        string `json:"status"`
	DisplayStatus string `json:"display_status"`
	StatusLabel   string `json:"status_label"`
	Currency      string `json:"currency"`

	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	BalanceDue     decimal.Decimal `json:"balance_due"`

	TotalInWords      string `json:"total_in_words,omitempty"`
	TotalInWordsExact bool   `json:"total_in_words_exact"` // false when the words are a plain fallback
	UPIPayload        string `json:"upi_payload,omitempty"`

	Notes string `json:"notes,omitempty"`
	Terms string `json:"terms,omitempty"`

	Items       []InvoiceItemResponse `json:"items"`
	Payments    []PaymentResponse     `json:"payments,omitempty"`
	PaymentInfo *PaymentInfoResponse  `json:"payment_info,omitempty"`
}

// InvoiceSummaryResponse compact invoice for listings and the dashboard.
type InvoiceSummaryResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	ClientID      string          `json:"client_id"`
	InvoiceDate   string          `json:"invoice_date"`
	DueDate       string          `json:"due_date"`
	Status        string          `json:"status"`
	DisplayStatus string          `json:"display_status"`
	Currency      string          `json:"currency"`
	Total         decimal.Decimal `json:"total"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	BalanceDue    decimal.Decimal `json:"balance_due"`
}

// ShareLinkResponse signed public link for an invoice PDF.
type ShareLinkResponse struct {
	Token     string `json:"token"`
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"`
}
