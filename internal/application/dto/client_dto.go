package dto

// ClientRequest body for POST/PUT /api/clients.
type ClientRequest struct {
	Name        string `json:"name"`
	CompanyName string `json:"company_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`

	BillingAddress    string `json:"billing_address"`
	BillingCity       string `json:"billing_city,omitempty"`
	BillingState      string `json:"billing_state,omitempty"`
	BillingCountry    string `json:"billing_country,omitempty"`
	BillingPostalCode string `json:"billing_postal_code,omitempty"`

	ShippingAddress    string `json:"shipping_address,omitempty"`
	ShippingCity       string `json:"shipping_city,omitempty"`
	ShippingState      string `json:"shipping_state,omitempty"`
	ShippingCountry    string `json:"shipping_country,omitempty"`
	ShippingPostalCode string `json:"shipping_postal_code,omitempty"`

	GSTIN string `json:"gstin,omitempty"`
}

// ClientResponse client in responses; the joined address lines are derived.
type ClientResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`

	BillingAddress    string `json:"billing_address"`
	BillingCity       string `json:"billing_city,omitempty"`
	BillingState      string `json:"billing_state,omitempty"`
	BillingCountry    string `json:"billing_country,omitempty"`
	BillingPostalCode string `json:"billing_postal_code,omitempty"`

	ShippingAddress    string `json:"shipping_address,omitempty"`
	ShippingCity       string `json:"shipping_city,omitempty"`
	ShippingState      string `json:"shipping_state,omitempty"`
	ShippingCountry    string `json:"shipping_country,omitempty"`
	ShippingPostalCode string `json:"shipping_postal_code,omitempty"`

	GSTIN string `json:"gstin,omitempty"`

	FullBillingAddress  string `json:"full_billing_address"`
	FullShippingAddress string `json:"full_shipping_address"`
}
