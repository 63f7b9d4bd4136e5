// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-emlak-keeper/internal/config"
	"github.com/MKhiriev/go-emlak-keeper/internal/crypto"
	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/store"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

// contractService is the entity-resolution orchestrator. It owns payload
// building; resolution of existing owners, tenants and properties and the
// atomicity guarantee belong to the repository transaction.
type contractService struct {
	contracts store.ContractRepository
	payloads  payloadBuilder

	logger *logger.Logger
}

// NewContractService constructs the [ContractService] that turns a validated
// form into a [models.CreateContractRequest] and hands it to the repository's
// single transaction.
//
// cipher encrypts TC and IBAN values and derives the TC lookup hash. When
// cfg.PlaintextDetailsEnabled reports false, contract details are written without
// the plaintext TC/IBAN copies.
//
// The service does not validate its input; wrap it with
// [ContractValidationService.Wrap] for that.
func NewContractService(contracts store.ContractRepository, cipher crypto.FieldCipher, cfg config.App, logger *logger.Logger) ContractService {
	return &contractService{
		contracts: contracts,
		payloads: payloadBuilder{
			cipher:           cipher,
			plaintextDetails: cfg.PlaintextDetailsEnabled(),
		},
		logger: logger,
	}
}

// CreateContractWithEntities expects an already validated form; wrap the
// service with NewContractValidationService to enforce that.
//
// Once the repository call is issued it is awaited to completion. Every
// failure is returned as ErrContractCreation wrapping the cause.
func (s *contractService) CreateContractWithEntities(ctx context.Context, form models.ContractForm, userID string) (models.ContractCreationResult, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.ContractCreationResult{}, ErrNoUserID
	}

	req, err := s.payloads.build(form, userID)
	if err != nil {
		log.Err(err).Str("func", "*contractService.CreateContractWithEntities").Msg("error building payloads")
		return models.ContractCreationResult{}, fmt.Errorf("%w: %w", ErrContractCreation, err)
	}

	result, err := s.contracts.CreateContractWithEntities(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*contractService.CreateContractWithEntities").Msg("atomic creation failed")
		return models.ContractCreationResult{}, fmt.Errorf("%w: %w", ErrContractCreation, err)
	}
	if !result.Success || result.ContractID == "" {
		return models.ContractCreationResult{}, fmt.Errorf("%w: %w", ErrContractCreation, store.ErrNoDataReturned)
	}

	return result, nil
}
