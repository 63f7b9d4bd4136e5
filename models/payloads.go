package models

// OwnerPayload is the owner part of an atomic creation request.
type OwnerPayload struct {
	Name          string  `json:"name"`
	TCEncrypted   string  `json:"tc_encrypted"`
	TCHash        string  `json:"tc_hash"`
	IBANEncrypted *string `json:"iban_encrypted"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
}

// TenantPayload is the tenant part of an atomic creation request.
type TenantPayload struct {
	Name        string  `json:"name"`
	TCEncrypted string  `json:"tc_encrypted"`
	TCHash      string  `json:"tc_hash"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
}

// PropertyPayload is the property part of an atomic creation request.
type PropertyPayload struct {
	AddressComponents
	FullAddress       string  `json:"full_address"`
	NormalizedAddress string  `json:"normalized_address"`
	Type              string  `json:"type"`
	UsePurpose        *string `json:"use_purpose"`
}

// ContractPayload is the contract part of an atomic creation request.
type ContractPayload struct {
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	RentAmount float64  `json:"rent_amount"`
	Deposit    *float64 `json:"deposit"`
	Currency   string   `json:"currency"`
}

// CreateContractRequest is everything the atomic transaction needs.
// Details is nil when no payment day was given.
type CreateContractRequest struct {
	UserID   string           `json:"user_id"`
	Owner    OwnerPayload     `json:"owner"`
	Tenant   TenantPayload    `json:"tenant"`
	Property PropertyPayload  `json:"property"`
	Contract ContractPayload  `json:"contract"`
	Details  *ContractDetails `json:"details,omitempty"`
}

// ContractCreationResult reports which entities were created and which were
// reused by the atomic transaction.
type ContractCreationResult struct {
	Success         bool   `json:"success"`
	CreatedOwner    bool   `json:"created_owner"`
	CreatedTenant   bool   `json:"created_tenant"`
	CreatedProperty bool   `json:"created_property"`
	OwnerName       string `json:"owner_name"`
	TenantName      string `json:"tenant_name"`
	PropertyAddress string `json:"property_address"`
	ContractID      string `json:"contract_id"`
	OwnerID         string `json:"owner_id"`
	TenantID        string `json:"tenant_id"`
	PropertyID      string `json:"property_id"`
}
