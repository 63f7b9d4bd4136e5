package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidContractForm = errors.New("invalid contract form")
	ErrRequired            = errors.New("field is required")
	ErrInvalidTC           = errors.New("TC kimlik no must be 11 digits")
	ErrInvalidIBAN         = errors.New("IBAN must be TR followed by 24 digits")
	ErrInvalidPhone        = errors.New("phone must be a 10 digit mobile number starting with 5")
	ErrInvalidEmail        = errors.New("invalid e-mail address")
	ErrInvalidDate         = errors.New("invalid date")
	ErrEndBeforeStart      = errors.New("end date must be after start date")
	ErrInvalidRent         = errors.New("rent amount must be greater than zero")
	ErrInvalidDeposit      = errors.New("deposit cannot be negative")
	ErrInvalidPaymentDay   = errors.New("payment day must be between 1 and 31")
	ErrInvalidPropertyType = errors.New("property type must be rental or sale")

	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file is too large")
	ErrEmptyFile           = errors.New("file is empty")
)

// FieldErrors maps form field names to the reason they were rejected. A
// non-empty FieldErrors is itself an error wrapping ErrInvalidContractForm.
type FieldErrors map[string]error

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k].Error())
	}
	return ErrInvalidContractForm.Error() + ": " + strings.Join(parts, "; ")
}

func (fe FieldErrors) Unwrap() error {
	return ErrInvalidContractForm
}

// Messages returns the rejection reasons as plain strings, keyed by field.
func (fe FieldErrors) Messages() map[string]string {
	out := make(map[string]string, len(fe))
	for k, err := range fe {
		out[k] = err.Error()
	}
	return out
}

func (fe FieldErrors) add(field string, err error) {
	if _, exists := fe[field]; !exists {
		fe[field] = err
	}
}

func (fe FieldErrors) orNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}
