// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

// ContractFormValidator checks a reviewed contract form before anything is
// encrypted or sent to storage. Unlike a fail-fast validator it reports every
// rejected field at once as FieldErrors.
type ContractFormValidator struct {
}

// NewContractFormValidator returns the validator for [models.ContractForm].
func NewContractFormValidator() Validator {
	return &ContractFormValidator{}
}

// Validate checks a ContractForm or its AddressComponents, by value or by
// pointer. With fields it checks only the named fields. All problems are
// collected into one [FieldErrors].
func (v *ContractFormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ContractForm:
		return v.validateContractForm(ctx, value, fields...)
	case *models.ContractForm:
		return v.validateContractForm(ctx, *value, fields...)

	case models.AddressComponents:
		return v.validateAddress(value, fields...)
	case *models.AddressComponents:
		return v.validateAddress(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContractFormValidator) validateContractForm(ctx context.Context, form models.ContractForm, fields ...string) error {
	if len(fields) == 0 {
		fields = contractFormFields
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldOwnerName:
			required(errs, f, form.OwnerName)
		case FieldOwnerTC:
			checkTC(errs, f, form.OwnerTC)
		case FieldOwnerIBAN:
			if iban := strings.TrimSpace(form.OwnerIBAN); iban != "" && !utils.IsValidIBAN(utils.NormalizeIBAN(iban)) {
				errs.add(f, ErrInvalidIBAN)
			}
		case FieldOwnerPhone:
			checkPhone(errs, f, form.OwnerPhone)
		case FieldOwnerEmail:
			checkEmail(errs, f, form.OwnerEmail)
		case FieldTenantName:
			required(errs, f, form.TenantName)
		case FieldTenantTC:
			checkTC(errs, f, form.TenantTC)
		case FieldTenantPhone:
			checkPhone(errs, f, form.TenantPhone)
		case FieldTenantEmail:
			checkEmail(errs, f, form.TenantEmail)
		case FieldMahalle, FieldCaddeSokak, FieldBinaNo, FieldIlce, FieldIl:
			required(errs, f, addressComponent(form.Address, f))
		case FieldPropertyType:
			switch form.PropertyType {
			case "", models.PropertyTypeRental, models.PropertyTypeSale:
			default:
				errs.add(f, ErrInvalidPropertyType)
			}
		case FieldStartDate:
			checkDate(errs, f, form.StartDate)
		case FieldEndDate:
			end := checkDate(errs, f, form.EndDate)
			if start, err := utils.NormalizeDate(form.StartDate); err == nil && end != "" && end <= start {
				errs.add(f, ErrEndBeforeStart)
			}
		case FieldRentAmount:
			if form.RentAmount <= 0 {
				errs.add(f, ErrInvalidRent)
			}
		case FieldDeposit:
			if form.Deposit != nil && *form.Deposit < 0 {
				errs.add(f, ErrInvalidDeposit)
			}
		case FieldPaymentDay:
			if form.PaymentDay != nil && (*form.PaymentDay < 1 || *form.PaymentDay > 31) {
				errs.add(f, ErrInvalidPaymentDay)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func (v *ContractFormValidator) validateAddress(address models.AddressComponents, fields ...string) error {
	if len(fields) == 0 {
		fields = AddressFields
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldMahalle, FieldCaddeSokak, FieldBinaNo, FieldIlce, FieldIl:
			required(errs, f, addressComponent(address, f))
		default:
			return ErrUnknownField
		}
	}
	return errs.orNil()
}

func addressComponent(a models.AddressComponents, field string) string {
	switch field {
	case FieldMahalle:
		return a.Mahalle
	case FieldCaddeSokak:
		return a.CaddeSokak
	case FieldBinaNo:
		return a.BinaNo
	case FieldIlce:
		return a.Ilce
	case FieldIl:
		return a.Il
	}
	return ""
}

func required(errs FieldErrors, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		errs.add(field, ErrRequired)
		return false
	}
	return true
}

func checkTC(errs FieldErrors, field, value string) {
	if required(errs, field, value) && !utils.IsValidTC(strings.TrimSpace(value)) {
		errs.add(field, ErrInvalidTC)
	}
}

func checkPhone(errs FieldErrors, field, value string) {
	if strings.TrimSpace(value) != "" && !utils.IsValidPhone(value) {
		errs.add(field, ErrInvalidPhone)
	}
}

func checkEmail(errs FieldErrors, field, value string) {
	if strings.TrimSpace(value) != "" && !utils.IsValidEmail(strings.TrimSpace(value)) {
		errs.add(field, ErrInvalidEmail)
	}
}

// checkDate returns the ISO form of value, or "" when it was rejected.
func checkDate(errs FieldErrors, field, value string) string {
	if !required(errs, field, value) {
		return ""
	}
	iso, err := utils.NormalizeDate(value)
	if err != nil {
		errs.add(field, ErrInvalidDate)
		return ""
	}
	return iso
}
