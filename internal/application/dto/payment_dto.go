package dto

import "github.com/shopspring/decimal"

// RecordPaymentRequest body for POST /api/invoices/:id/payments.
type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	IsAdvance bool            `json:"is_advance"`
	Method    string          `json:"method,omitempty"`
	Reference string          `json:"reference,omitempty"`
	Note      string          `json:"note,omitempty"`
	PaidOn    string          `json:"paid_on,omitempty"` // YYYY-MM-DD, defaults to today
}

// PaymentResponse payment in responses.
type PaymentResponse struct {
	ID        string          `json:"id"`
	InvoiceID string          `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	IsAdvance bool            `json:"is_advance"`
	Method    string          `json:"method"`
	Reference string          `json:"reference,omitempty"`
	Note      string          `json:"note,omitempty"`
	PaidOn    string          `json:"paid_on"`
}

// RecordPaymentResponse returns the payment together with the refreshed
// invoice payment state.
type RecordPaymentResponse struct {
	Payment       PaymentResponse `json:"payment"`
	InvoiceID     string          `json:"invoice_id"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	BalanceDue    decimal.Decimal `json:"balance_due"`
	InvoiceStatus string          `json:"invoice_status"`
}

// PaymentInfoRequest body for PUT /api/invoices/:id/payment-info.
type PaymentInfoRequest struct {
	PaymentMethod        string `json:"payment_method,omitempty"`
	PaymentTerms         string `json:"payment_terms,omitempty"`
	BankInstructions     string `json:"bank_instructions,omitempty"`
	SignaturePath        string `json:"signature_path,omitempty"`
	SignatoryName        string `json:"signatory_name,omitempty"`
	SignatoryDesignation string `json:"signatory_designation,omitempty"`
}

// PaymentInfoResponse payment info in responses.
type PaymentInfoResponse struct {
	InvoiceID            string `json:"invoice_id"`
	PaymentMethod        string `json:"payment_method,omitempty"`
	PaymentTerms         string `json:"payment_terms,omitempty"`
	BankInstructions     string `json:"bank_instructions,omitempty"`
	SignaturePath        string `json:"signature_path,omitempty"`
	SignatoryName        string `json:"signatory_name,omitempty"`
	SignatoryDesignation string `json:"signatory_designation,omitempty"`
}
