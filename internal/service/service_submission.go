// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-emlak-keeper/internal/config"
	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/store"
	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"github.com/MKhiriev/go-emlak-keeper/internal/validators"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

// attachWarning is reported when the contract exists but its PDF does not.
const attachWarning = "contract created, but the document could not be saved; attach it again from the contract page"

type submissionService struct {
	contractService ContractService
	documentService DocumentService
	contracts       store.ContractRepository
	warnings        store.WarningTracker

	validator         validators.Validator
	documentValidator validators.Validator

	logger *logger.Logger
}

// NewSubmissionService builds the one-shot submission flow on top of the
// contract and document services.
//
// contracts is used only for the active-contract check, and warnings is
// cleared once a contract has been created for the session. The attached
// document is checked against the same PDF rules and size limit
// (cfg.ImportMaxBytes) that DocumentService applies, but before anything is
// created.
func NewSubmissionService(contractService ContractService, documentService DocumentService, contracts store.ContractRepository, warnings store.WarningTracker, cfg config.App, logger *logger.Logger) SubmissionService {
	return &submissionService{
		contractService:   contractService,
		documentService:   documentService,
		contracts:         contracts,
		warnings:          warnings,
		validator:         validators.NewContractFormValidator(),
		documentValidator: validators.NewPDFUploadValidator(limitOr(cfg.ImportMaxBytes, config.DefaultImportMaxBytes)),
		logger:            logger,
	}
}

// SubmitContract validates the form and the optional PDF, requires
// confirmation when the address already has an active contract, creates the
// contract and finally attaches the PDF.
//
// An upload that is not a PDF, is empty or is too large is rejected before
// creation. A failure to store an accepted PDF does not undo the creation:
// the result carries a Warning and DocumentAttached is false.
func (s *submissionService) SubmitContract(ctx context.Context, sub models.ContractSubmission) (models.SubmissionResult, error) {
	log := logger.FromContext(ctx)

	if sub.UserID == "" {
		return models.SubmissionResult{}, ErrNoUserID
	}
	if err := s.validator.Validate(ctx, sub.Form); err != nil {
		return models.SubmissionResult{}, err
	}
	if sub.Document != nil {
		if err := s.documentValidator.Validate(ctx, *sub.Document); err != nil {
			return models.SubmissionResult{}, err
		}
	}

	active, err := s.contracts.FindActiveContractByAddress(ctx, sub.UserID, utils.NormalizeAddress(sub.Form.Address))
	if err != nil {
		log.Err(err).Str("func", "*submissionService.SubmitContract").Msg("active contract lookup failed")
		return models.SubmissionResult{}, fmt.Errorf("active contract lookup: %w", err)
	}
	if active != nil && !sub.ConfirmConflict {
		return models.SubmissionResult{}, &ConflictError{Contract: active}
	}

	creation, err := s.contractService.CreateContractWithEntities(ctx, sub.Form, sub.UserID)
	if err != nil {
		return models.SubmissionResult{}, err
	}

	result := models.SubmissionResult{
		Creation: creation,
		Conflict: active,
	}

	if sub.SessionID != "" {
		if err = s.warnings.Clear(ctx, sub.SessionID); err != nil {
			log.Err(err).Str("func", "*submissionService.SubmitContract").Msg("error clearing warning state")
		}
	}

	if sub.Document == nil {
		return result, nil
	}

	doc, err := s.documentService.AttachContractPDF(ctx, sub.UserID, creation.ContractID, *sub.Document)
	if err != nil {
		log.Warn().Err(err).Str("contract_id", creation.ContractID).Msg("contract created without document")
		result.Warning = attachWarning
		return result, nil
	}

	result.DocumentAttached = true
	result.Document = &doc

	return result, nil
}
