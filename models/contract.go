// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ContractStatus is the lifecycle state of a contract.
type ContractStatus string

const (
	ContractStatusActive   ContractStatus = "Active"
	ContractStatusArchived ContractStatus = "Archived"
	ContractStatusInactive ContractStatus = "Inactive"
)

// DefaultCurrency is used for every contract created through the import flow.
const DefaultCurrency = "TRY"

// DateLayout is the canonical date form used in payloads and storage.
const DateLayout = "2006-01-02"

// Contract links one owner, one tenant and one property.
// EndDate is always strictly after StartDate.
type Contract struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	OwnerID    string         `json:"owner_id"`
	TenantID   string         `json:"tenant_id"`
	PropertyID string         `json:"property_id"`
	StartDate  string         `json:"start_date"`
	EndDate    string         `json:"end_date"`
	RentAmount float64        `json:"rent_amount"`
	Deposit    *float64       `json:"deposit,omitempty"`
	Currency   string         `json:"currency"`
	Status     ContractStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
}

// ContractDetails holds the optional extended terms of a contract.
//
// OwnerTC, OwnerIBAN and TenantTC are plaintext copies kept for document
// generation. They are only filled when plaintext details are enabled in the
// application config.
type ContractDetails struct {
	ContractID        string  `json:"contract_id"`
	PaymentDay        int     `json:"payment_day"`
	PaymentMethod     *string `json:"payment_method,omitempty"`
	AnnualRent        float64 `json:"annual_rent"`
	DurationMonths    int     `json:"duration_months"`
	UsePurpose        *string `json:"use_purpose,omitempty"`
	SpecialConditions *string `json:"special_conditions,omitempty"`
	OwnerTC           *string `json:"owner_tc,omitempty"`
	OwnerIBAN         *string `json:"owner_iban,omitempty"`
	TenantTC          *string `json:"tenant_tc,omitempty"`
}

// ActiveContractSummary is what the conflict check exposes about an existing
// active contract. It never carries encrypted fields.
type ActiveContractSummary struct {
	ContractID string  `json:"contract_id"`
	TenantName string  `json:"tenant_name"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	RentAmount float64 `json:"rent_amount"`
	Currency   string  `json:"currency"`
}

// ConflictCheck is the result of checking a candidate address for an active
// contract.
type ConflictCheck struct {
	// Complete is false when required address fields are still missing; in
	// that case no lookup was made and any previous warning was cleared.
	Complete          bool                   `json:"complete"`
	NormalizedAddress string                 `json:"normalized_address,omitempty"`
	ActiveContract    *ActiveContractSummary `json:"active_contract,omitempty"`
	// Notify is true only the first time a given contract id is reported in
	// a session.
	Notify bool `json:"notify"`
}
