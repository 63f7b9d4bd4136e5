// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-emlak-keeper/models"
)

// ContractRepository owns the contract aggregate: owners, tenants,
// properties, contracts and their details.
//
// Every method is scoped by userID; rows of other users are invisible.
type ContractRepository interface {
	// FindActiveContractByAddress returns the active contract on the property
	// with the given normalized address, or nil when there is none.
	FindActiveContractByAddress(ctx context.Context, userID, normalizedAddress string) (*models.ActiveContractSummary, error)

	// CreateContractWithEntities finds or creates the owner (by TC hash), the
	// tenant (by TC hash) and the property (by normalized address), then
	// inserts the contract and optional details. All of it happens in one
	// transaction: on error nothing is persisted.
	CreateContractWithEntities(ctx context.Context, req models.CreateContractRequest) (models.ContractCreationResult, error)

	// GetContract returns ErrContractNotFound when the contract does not
	// exist or belongs to another user.
	GetContract(ctx context.Context, userID, contractID string) (models.Contract, error)
}

// DocumentRepository stores metadata of documents attached to contracts.
type DocumentRepository interface {
	SaveDocument(ctx context.Context, doc models.ContractDocument) (models.ContractDocument, error)
	GetDocument(ctx context.Context, userID, documentID string) (models.ContractDocument, error)
	DeleteDocument(ctx context.Context, userID, documentID string) error
}

// PartyRepository reads owners and tenants for identity reveal.
type PartyRepository interface {
	GetOwner(ctx context.Context, userID, ownerID string) (models.Owner, error)
	GetTenant(ctx context.Context, userID, tenantID string) (models.Tenant, error)
}

// DocumentStorage keeps document bodies. Paths it returns are relative to the
// storage root and are what DocumentRepository persists.
type DocumentStorage interface {
	Save(ctx context.Context, userID, contractID string, file models.UploadedFile) (string, error)
	Delete(ctx context.Context, path string) error
}

// WarningTracker remembers, per review session, the last contract id the
// user was warned about so that a conflict is reported once.
type WarningTracker interface {
	// SwapWarned records contractID as the session's last warning and returns
	// the previous one ("" when nothing was recorded or it expired). The read
	// and the write happen atomically.
	SwapWarned(ctx context.Context, sessionID, contractID string) (string, error)
	Clear(ctx context.Context, sessionID string) error
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
