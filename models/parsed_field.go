package models

import "strconv"

// ParsedField identifies a single value in ParsedContractData regardless of
// which shape carries it.
type ParsedField string

const (
	FieldOwnerName     ParsedField = "owner.name"
	FieldOwnerTC       ParsedField = "owner.tc"
	FieldOwnerPhone    ParsedField = "owner.phone"
	FieldOwnerEmail    ParsedField = "owner.email"
	FieldOwnerIBAN     ParsedField = "owner.iban"
	FieldTenantName    ParsedField = "tenant.name"
	FieldTenantTC      ParsedField = "tenant.tc"
	FieldTenantPhone   ParsedField = "tenant.phone"
	FieldTenantEmail   ParsedField = "tenant.email"
	FieldTenantAddress ParsedField = "tenant.address"
	FieldMahalle       ParsedField = "property.mahalle"
	FieldCaddeSokak    ParsedField = "property.cadde_sokak"
	FieldBinaNo        ParsedField = "property.bina_no"
	FieldDaireNo       ParsedField = "property.daire_no"
	FieldIlce          ParsedField = "property.ilce"
	FieldIl            ParsedField = "property.il"
	FieldUsePurpose    ParsedField = "property.use_purpose"
	FieldStartDate     ParsedField = "contract.startDate"
	FieldEndDate       ParsedField = "contract.endDate"
	FieldRentAmount    ParsedField = "contract.rentAmount"
	FieldDeposit       ParsedField = "contract.deposit"
	FieldPaymentDay    ParsedField = "contract.paymentDay"
)

// KnownParsedFields lists every field the parser can produce, in form order.
var KnownParsedFields = []ParsedField{
	FieldOwnerName, FieldOwnerTC, FieldOwnerPhone, FieldOwnerEmail, FieldOwnerIBAN,
	FieldTenantName, FieldTenantTC, FieldTenantPhone, FieldTenantEmail, FieldTenantAddress,
	FieldMahalle, FieldCaddeSokak, FieldBinaNo, FieldDaireNo, FieldIlce, FieldIl, FieldUsePurpose,
	FieldStartDate, FieldEndDate, FieldRentAmount, FieldDeposit, FieldPaymentDay,
}

// Field returns the value of f, reading the nested shape first and falling
// back to the legacy flat keys. Empty strings count as absent.
func (p ParsedContractData) Field(f ParsedField) (string, bool) {
	if v := p.nested(f); v != "" {
		return v, true
	}
	if v := deref(p.legacy(f)); v != "" {
		return v, true
	}
	return "", false
}

// CountExtractedFields returns how many known fields carry a non-empty value.
func (p ParsedContractData) CountExtractedFields() int {
	n := 0
	for _, f := range KnownParsedFields {
		if _, ok := p.Field(f); ok {
			n++
		}
	}
	return n
}

// WithLegacyFields returns a copy with the flat keys mirrored from the nested
// shape, for clients that only understand the flat form.
func (p ParsedContractData) WithLegacyFields() ParsedContractData {
	out := p
	for _, f := range KnownParsedFields {
		if v := p.nested(f); v != "" {
			value := v
			*out.legacyRef(f) = &value
		}
	}
	return out
}

func (p ParsedContractData) nested(f ParsedField) string {
	switch f {
	case FieldOwnerName, FieldOwnerTC, FieldOwnerPhone, FieldOwnerEmail, FieldOwnerIBAN:
		if p.Owner == nil {
			return ""
		}
		return partyField(p.Owner, f)
	case FieldTenantName, FieldTenantTC, FieldTenantPhone, FieldTenantEmail, FieldTenantAddress:
		if p.Tenant == nil {
			return ""
		}
		return partyField(p.Tenant, f)
	case FieldMahalle, FieldCaddeSokak, FieldBinaNo, FieldDaireNo, FieldIlce, FieldIl, FieldUsePurpose:
		if p.Property == nil {
			return ""
		}
		return propertyField(p.Property, f)
	case FieldStartDate, FieldEndDate, FieldRentAmount, FieldDeposit, FieldPaymentDay:
		if p.Contract == nil {
			return ""
		}
		return termsField(p.Contract, f)
	}
	return ""
}

func partyField(party *ParsedParty, f ParsedField) string {
	switch f {
	case FieldOwnerName, FieldTenantName:
		return deref(party.Name)
	case FieldOwnerTC, FieldTenantTC:
		return deref(party.TC)
	case FieldOwnerPhone, FieldTenantPhone:
		return deref(party.Phone)
	case FieldOwnerEmail, FieldTenantEmail:
		return deref(party.Email)
	case FieldOwnerIBAN:
		return deref(party.IBAN)
	case FieldTenantAddress:
		return deref(party.Address)
	}
	return ""
}

func propertyField(prop *ParsedProperty, f ParsedField) string {
	switch f {
	case FieldMahalle:
		return deref(prop.Mahalle)
	case FieldCaddeSokak:
		return deref(prop.CaddeSokak)
	case FieldBinaNo:
		return deref(prop.BinaNo)
	case FieldDaireNo:
		return deref(prop.DaireNo)
	case FieldIlce:
		return deref(prop.Ilce)
	case FieldIl:
		return deref(prop.Il)
	case FieldUsePurpose:
		return deref(prop.UsePurpose)
	}
	return ""
}

func termsField(terms *ParsedTerms, f ParsedField) string {
	switch f {
	case FieldStartDate:
		return deref(terms.StartDate)
	case FieldEndDate:
		return deref(terms.EndDate)
	case FieldRentAmount:
		return formatAmount(terms.RentAmount)
	case FieldDeposit:
		return formatAmount(terms.Deposit)
	case FieldPaymentDay:
		if terms.PaymentDay == nil {
			return ""
		}
		return strconv.Itoa(*terms.PaymentDay)
	}
	return ""
}

func (p ParsedContractData) legacy(f ParsedField) *string {
	return *p.legacyRef(f)
}

func (p *ParsedContractData) legacyRef(f ParsedField) **string {
	l := &p.LegacyFields
	switch f {
	case FieldOwnerName:
		return &l.OwnerName
	case FieldOwnerTC:
		return &l.OwnerTC
	case FieldOwnerPhone:
		return &l.OwnerPhone
	case FieldOwnerEmail:
		return &l.OwnerEmail
	case FieldOwnerIBAN:
		return &l.OwnerIBAN
	case FieldTenantName:
		return &l.TenantName
	case FieldTenantTC:
		return &l.TenantTC
	case FieldTenantPhone:
		return &l.TenantPhone
	case FieldTenantEmail:
		return &l.TenantEmail
	case FieldTenantAddress:
		return &l.TenantAddress
	case FieldMahalle:
		return &l.Mahalle
	case FieldCaddeSokak:
		return &l.CaddeSokak
	case FieldBinaNo:
		return &l.BinaNo
	case FieldDaireNo:
		return &l.DaireNo
	case FieldIlce:
		return &l.Ilce
	case FieldIl:
		return &l.Il
	case FieldUsePurpose:
		return &l.UsePurpose
	case FieldStartDate:
		return &l.StartDate
	case FieldEndDate:
		return &l.EndDate
	case FieldRentAmount:
		return &l.RentAmount
	case FieldDeposit:
		return &l.Deposit
	case FieldPaymentDay:
		return &l.PaymentDay
	}
	var unknown *string
	return &unknown
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatAmount(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
