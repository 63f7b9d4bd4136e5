package models

import "time"

// Property types.
const (
	PropertyTypeRental = "rental"
	PropertyTypeSale   = "sale"
)

// Property is a physical unit. NormalizedAddress is the matching key: two
// properties with equal normalized addresses are the same unit.
type Property struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	// OwnerID is set when the property was created through a contract import.
	OwnerID string `json:"owner_id"`
	AddressComponents
	FullAddress       string    `json:"full_address"`
	NormalizedAddress string    `json:"normalized_address"`
	Type              string    `json:"type"`
	UsePurpose        *string   `json:"use_purpose,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
