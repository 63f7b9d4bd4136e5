package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-emlak-keeper/internal/crypto"
	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

// payloadBuilder turns a validated form into the creation request. It is the
// only place where TC and IBAN values are encrypted and hashed.
type payloadBuilder struct {
	cipher           crypto.FieldCipher
	plaintextDetails bool
}

func (b payloadBuilder) build(form models.ContractForm, userID string) (models.CreateContractRequest, error) {
	ownerTC := strings.TrimSpace(form.OwnerTC)
	tenantTC := strings.TrimSpace(form.TenantTC)
	iban := utils.NormalizeIBAN(form.OwnerIBAN)

	ownerTCEnc, err := b.cipher.Encrypt(ownerTC)
	if err != nil {
		return models.CreateContractRequest{}, fmt.Errorf("owner tc: %w", err)
	}
	tenantTCEnc, err := b.cipher.Encrypt(tenantTC)
	if err != nil {
		return models.CreateContractRequest{}, fmt.Errorf("tenant tc: %w", err)
	}

	var ibanEnc *string
	if iban != "" {
		enc, err := b.cipher.Encrypt(iban)
		if err != nil {
			return models.CreateContractRequest{}, fmt.Errorf("owner iban: %w", err)
		}
		ibanEnc = &enc
	}

	startDate, err := utils.NormalizeDate(form.StartDate)
	if err != nil {
		return models.CreateContractRequest{}, fmt.Errorf("start date: %w", err)
	}
	endDate, err := utils.NormalizeDate(form.EndDate)
	if err != nil {
		return models.CreateContractRequest{}, fmt.Errorf("end date: %w", err)
	}

	address := trimAddress(form.Address)
	propertyType := form.PropertyType
	if propertyType == "" {
		propertyType = models.PropertyTypeRental
	}

	req := models.CreateContractRequest{
		UserID: userID,
		Owner: models.OwnerPayload{
			Name:          strings.TrimSpace(form.OwnerName),
			TCEncrypted:   ownerTCEnc,
			TCHash:        b.cipher.HashTC(ownerTC),
			IBANEncrypted: ibanEnc,
			Phone:         phoneOrNil(form.OwnerPhone),
			Email:         blankToNil(form.OwnerEmail),
		},
		Tenant: models.TenantPayload{
			Name:        strings.TrimSpace(form.TenantName),
			TCEncrypted: tenantTCEnc,
			TCHash:      b.cipher.HashTC(tenantTC),
			Phone:       phoneOrNil(form.TenantPhone),
			Email:       blankToNil(form.TenantEmail),
			Address:     blankToNil(form.TenantAddress),
		},
		Property: models.PropertyPayload{
			AddressComponents: address,
			FullAddress:       utils.GenerateFullAddress(address),
			NormalizedAddress: utils.NormalizeAddress(address),
			Type:              propertyType,
			UsePurpose:        blankToNil(form.UsePurpose),
		},
		Contract: models.ContractPayload{
			StartDate:  startDate,
			EndDate:    endDate,
			RentAmount: form.RentAmount,
			Deposit:    form.Deposit,
			Currency:   models.DefaultCurrency,
		},
	}

	if form.PaymentDay != nil {
		months, err := utils.MonthsBetween(startDate, endDate)
		if err != nil {
			return models.CreateContractRequest{}, fmt.Errorf("duration: %w", err)
		}

		details := &models.ContractDetails{
			PaymentDay:        *form.PaymentDay,
			PaymentMethod:     blankToNil(form.PaymentMethod),
			AnnualRent:        form.RentAmount * 12,
			DurationMonths:    months,
			UsePurpose:        blankToNil(form.UsePurpose),
			SpecialConditions: blankToNil(form.SpecialConditions),
		}
		// plaintext copies for document generation
		if b.plaintextDetails {
			details.OwnerTC = &ownerTC
			details.TenantTC = &tenantTC
			if iban != "" {
				details.OwnerIBAN = &iban
			}
		}
		req.Details = details
	}

	return req, nil
}

func trimAddress(a models.AddressComponents) models.AddressComponents {
	return models.AddressComponents{
		Mahalle:    strings.TrimSpace(a.Mahalle),
		CaddeSokak: strings.TrimSpace(a.CaddeSokak),
		BinaNo:     strings.TrimSpace(a.BinaNo),
		DaireNo:    strings.TrimSpace(a.DaireNo),
		Ilce:       strings.TrimSpace(a.Ilce),
		Il:         strings.TrimSpace(a.Il),
	}
}

func blankToNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func phoneOrNil(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	normalized := utils.NormalizePhone(s)
	return &normalized
}
