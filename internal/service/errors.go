package service

import (
	"errors"

	"github.com/MKhiriev/go-emlak-keeper/models"
)

var (
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrContractCreation wraps every failure of the atomic creation; the
	// wrapped error carries the storage message.
	ErrContractCreation = errors.New("contract creation failed")

	// ErrConflictConfirmationRequired is returned by submission when the
	// address already has an active contract and the user has not confirmed.
	ErrConflictConfirmationRequired = errors.New("address already has an active contract, confirmation required")

	ErrDocumentAttach      = errors.New("document could not be attached")
	ErrIdentityUnavailable = errors.New("identity could not be decrypted")
	ErrNoUserID            = errors.New("no user id given")
)

// ConflictError carries the active contract that blocked a submission.
type ConflictError struct {
	Contract *models.ActiveContractSummary
}

func (e *ConflictError) Error() string {
	return ErrConflictConfirmationRequired.Error() + ": " + e.Contract.ContractID
}

func (e *ConflictError) Unwrap() error {
	return ErrConflictConfirmationRequired
}
