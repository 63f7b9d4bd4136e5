package service

import (
	"context"

	"github.com/MKhiriev/go-emlak-keeper/internal/validators"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

// ContractValidationService rejects an invalid form before any payload is
// built or any storage call is made. The error is the validators.FieldErrors
// value itself so callers can render per-field messages.
type ContractValidationService struct {
	inner     ContractService
	validator validators.Validator
}

// NewContractValidationService returns a decorator that runs the contract form
// validator before delegating to the wrapped [ContractService].
func NewContractValidationService() ContractServiceWrapper {
	return &ContractValidationService{
		validator: validators.NewContractFormValidator(),
	}
}

// CreateContractWithEntities rejects an invalid form with
// [validators.FieldErrors] and otherwise forwards the call unchanged.
func (v *ContractValidationService) CreateContractWithEntities(ctx context.Context, form models.ContractForm, userID string) (models.ContractCreationResult, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.ContractCreationResult{}, err
	}

	return v.inner.CreateContractWithEntities(ctx, form, userID)
}

// Wrap installs wrapped as the delegate and returns the decorator.
func (v *ContractValidationService) Wrap(wrapped ContractService) ContractService {
	v.inner = wrapped
	return v
}
