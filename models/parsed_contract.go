package models

// ParsedParty is a party (owner or tenant) as recognized in free text.
type ParsedParty struct {
	Name    *string `json:"name,omitempty"`
	TC      *string `json:"tc,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	IBAN    *string `json:"iban,omitempty"`
	Address *string `json:"address,omitempty"`
}

// ParsedProperty is the property address as recognized in free text.
type ParsedProperty struct {
	Mahalle    *string `json:"mahalle,omitempty"`
	CaddeSokak *string `json:"cadde_sokak,omitempty"`
	BinaNo     *string `json:"bina_no,omitempty"`
	DaireNo    *string `json:"daire_no,omitempty"`
	Ilce       *string `json:"ilce,omitempty"`
	Il         *string `json:"il,omitempty"`
	UsePurpose *string `json:"use_purpose,omitempty"`
}

// ParsedTerms holds contract terms recognized in free text. Dates are
// YYYY-MM-DD.
type ParsedTerms struct {
	StartDate  *string  `json:"startDate,omitempty"`
	EndDate    *string  `json:"endDate,omitempty"`
	RentAmount *float64 `json:"rentAmount,omitempty"`
	Deposit    *float64 `json:"deposit,omitempty"`
	PaymentDay *int     `json:"paymentDay,omitempty"`
}

// ParsedContractData is the best-effort, unverified result of parsing a
// contract text. Every field is optional.
//
// Two shapes are supported: the nested groups and the older flat keys. Read
// values through Field, which prefers the nested shape.
type ParsedContractData struct {
	Owner    *ParsedParty    `json:"owner,omitempty"`
	Tenant   *ParsedParty    `json:"tenant,omitempty"`
	Property *ParsedProperty `json:"property,omitempty"`
	Contract *ParsedTerms    `json:"contract,omitempty"`

	LegacyFields
}

// LegacyFields is the flat shape produced by older parser versions.
type LegacyFields struct {
	OwnerName     *string `json:"ownerName,omitempty"`
	OwnerTC       *string `json:"ownerTc,omitempty"`
	OwnerPhone    *string `json:"ownerPhone,omitempty"`
	OwnerEmail    *string `json:"ownerEmail,omitempty"`
	OwnerIBAN     *string `json:"ownerIban,omitempty"`
	TenantName    *string `json:"tenantName,omitempty"`
	TenantTC      *string `json:"tenantTc,omitempty"`
	TenantPhone   *string `json:"tenantPhone,omitempty"`
	TenantEmail   *string `json:"tenantEmail,omitempty"`
	TenantAddress *string `json:"tenantAddress,omitempty"`
	Mahalle       *string `json:"mahalle,omitempty"`
	CaddeSokak    *string `json:"caddeSokak,omitempty"`
	BinaNo        *string `json:"binaNo,omitempty"`
	DaireNo       *string `json:"daireNo,omitempty"`
	Ilce          *string `json:"ilce,omitempty"`
	Il            *string `json:"il,omitempty"`
	UsePurpose    *string `json:"usePurpose,omitempty"`
	StartDate     *string `json:"startDate,omitempty"`
	EndDate       *string `json:"endDate,omitempty"`
	RentAmount    *string `json:"rentAmount,omitempty"`
	Deposit       *string `json:"deposit,omitempty"`
	PaymentDay    *string `json:"paymentDay,omitempty"`
}
