package models

// ContractForm is the reviewed form submitted to create a contract. Values are
// plaintext as entered; encryption and normalization happen when payloads are
// built.
type ContractForm struct {
	OwnerName  string `json:"owner_name"`
	OwnerTC    string `json:"owner_tc"`
	OwnerIBAN  string `json:"owner_iban,omitempty"`
	OwnerPhone string `json:"owner_phone,omitempty"`
	OwnerEmail string `json:"owner_email,omitempty"`

	TenantName    string `json:"tenant_name"`
	TenantTC      string `json:"tenant_tc"`
	TenantPhone   string `json:"tenant_phone,omitempty"`
	TenantEmail   string `json:"tenant_email,omitempty"`
	TenantAddress string `json:"tenant_address,omitempty"`

	Address      AddressComponents `json:"address"`
	PropertyType string            `json:"property_type,omitempty"`
	UsePurpose   string            `json:"use_purpose,omitempty"`

	// StartDate and EndDate accept YYYY-MM-DD, DD.MM.YYYY or DD/MM/YYYY.
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	RentAmount float64  `json:"rent_amount"`
	Deposit    *float64 `json:"deposit,omitempty"`

	PaymentDay        *int   `json:"payment_day,omitempty"`
	PaymentMethod     string `json:"payment_method,omitempty"`
	SpecialConditions string `json:"special_conditions,omitempty"`
}
