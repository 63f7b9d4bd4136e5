package service

import (
	"context"

	"github.com/MKhiriev/go-emlak-keeper/models"
)

// ImportService turns an uploaded contract into a parsed, pre-filled review
// form.
type ImportService interface {
	ImportContract(ctx context.Context, file models.UploadedFile) (models.ImportResult, error)
	ExtractDocument(ctx context.Context, file models.UploadedFile) (models.ExtractionResult, error)
	ParseContractText(ctx context.Context, text string) models.ParsedContractData
}

// ConflictService is the advisory active-contract check run while a user
// reviews the property address.
type ConflictService interface {
	CheckAddress(ctx context.Context, userID, sessionID string, address models.AddressComponents) (models.ConflictCheck, error)
}

// ContractService builds encrypted payloads from a reviewed form and creates
// the contract with all its entities atomically.
type ContractService interface {
	CreateContractWithEntities(ctx context.Context, form models.ContractForm, userID string) (models.ContractCreationResult, error)
}

// SubmissionService runs the whole submit flow: validation, conflict
// confirmation, creation and the optional document attach.
type SubmissionService interface {
	SubmitContract(ctx context.Context, submission models.ContractSubmission) (models.SubmissionResult, error)
}

type DocumentService interface {
	AttachContractPDF(ctx context.Context, userID, contractID string, file models.UploadedFile) (models.ContractDocument, error)
	DeleteContractDocument(ctx context.Context, userID, documentID string) error
}

// IdentityService decrypts stored identity fields on demand.
type IdentityService interface {
	RevealOwnerIdentity(ctx context.Context, userID, ownerID string) (models.RevealedIdentity, error)
	RevealTenantIdentity(ctx context.Context, userID, tenantID string) (models.RevealedIdentity, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, userID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ContractServiceWrapper defines middleware composition for ContractService.
// Implementations wrap an existing ContractService to add behavior such as
// validation.
type ContractServiceWrapper interface {
	Wrap(ContractService) ContractService
}
