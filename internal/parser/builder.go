package parser

import (
	"strings"

	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

// builder accumulates recognized values; the first value found for a field
// is kept.
type builder struct {
	owner    models.ParsedParty
	tenant   models.ParsedParty
	property models.ParsedProperty
	terms    models.ParsedTerms
}

func newBuilder() *builder {
	return &builder{}
}

// partyFor resolves which party an unlabeled identity value belongs to.
// Outside a party section the owner is filled first.
func (b *builder) partyFor(ctx party, filled func(*models.ParsedParty) bool) *models.ParsedParty {
	switch ctx {
	case partyOwner:
		return &b.owner
	case partyTenant:
		return &b.tenant
	}
	if !filled(&b.owner) {
		return &b.owner
	}
	return &b.tenant
}

func (b *builder) setName(p party, value string) {
	target := &b.owner
	if p == partyTenant {
		target = &b.tenant
	}
	set(&target.Name, cleanName(value))
}

func (b *builder) setTC(ctx party, tc string) {
	target := b.partyFor(ctx, func(p *models.ParsedParty) bool { return p.TC != nil })
	set(&target.TC, tc)
}

func (b *builder) setPhone(ctx party, phone string) {
	target := b.partyFor(ctx, func(p *models.ParsedParty) bool { return p.Phone != nil })
	set(&target.Phone, phone)
}

func (b *builder) setEmail(ctx party, email string) {
	target := b.partyFor(ctx, func(p *models.ParsedParty) bool { return p.Email != nil })
	set(&target.Email, email)
}

// setPropertyAddress fills address components from a one-line address.
// Components already read from their own labels are kept.
func (b *builder) setPropertyAddress(value string) {
	value = cleanText(value)
	if value == "" {
		return
	}

	if !strings.Contains(value, ",") {
		if loc := locationPattern.FindStringSubmatchIndex(value); loc != nil {
			value = value[:loc[0]] + ", " + value[loc[2]:loc[3]] + "/" + value[loc[4]:loc[5]]
		}
	}

	parsed := utils.ParseAddress(value)
	setPtr(&b.property.Mahalle, parsed.Mahalle)
	setPtr(&b.property.CaddeSokak, parsed.CaddeSokak)
	setPtr(&b.property.BinaNo, parsed.BinaNo)
	setPtr(&b.property.DaireNo, parsed.DaireNo)
	setPtr(&b.property.Ilce, parsed.Ilce)
	setPtr(&b.property.Il, parsed.Il)
}

func setPtr(dst **string, value *string) {
	if value != nil {
		set(dst, strings.TrimSpace(*value))
	}
}

func (b *builder) result() models.ParsedContractData {
	var out models.ParsedContractData
	if b.owner != (models.ParsedParty{}) {
		owner := b.owner
		out.Owner = &owner
	}
	if b.tenant != (models.ParsedParty{}) {
		tenant := b.tenant
		out.Tenant = &tenant
	}
	if b.property != (models.ParsedProperty{}) {
		property := b.property
		out.Property = &property
	}
	if b.terms != (models.ParsedTerms{}) {
		terms := b.terms
		out.Contract = &terms
	}
	return out
}
