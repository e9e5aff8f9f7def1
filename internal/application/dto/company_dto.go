package dto

// CompanyRequest body for POST/PUT /api/companies.
type CompanyRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Website    string `json:"website,omitempty"`
	LogoPath   string `json:"logo_path,omitempty"`

	BankName      string `json:"bank_name,omitempty"`
	BankBranch    string `json:"bank_branch,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	IFSCCode      string `json:"ifsc_code,omitempty"`

	UPIID string `json:"upi_id,omitempty"`
	GSTIN string `json:"gstin,omitempty"`
	PAN   string `json:"pan,omitempty"`
}

// CompanyResponse company in responses.
type CompanyResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Website    string `json:"website,omitempty"`
	LogoPath   string `json:"logo_path,omitempty"`

	BankName      string `json:"bank_name,omitempty"`
	BankBranch    string `json:"bank_branch,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	IFSCCode      string `json:"ifsc_code,omitempty"`

	UPIID string `json:"upi_id,omitempty"`
	GSTIN string `json:"gstin,omitempty"`
	PAN   string `json:"pan,omitempty"`
}
