package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-emlak-keeper/internal/config"
	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/store"
	"github.com/MKhiriev/go-emlak-keeper/internal/validators"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

type documentService struct {
	contracts store.ContractRepository
	documents store.DocumentRepository
	files     store.DocumentStorage

	validator validators.Validator

	logger *logger.Logger
}

// NewDocumentService constructs the [DocumentService] that stores contract
// PDFs in files and links them through documents.
//
// Uploads are limited to cfg.ImportMaxBytes (or [config.DefaultImportMaxBytes]
// when unset) and must sniff as PDF.
func NewDocumentService(contracts store.ContractRepository, documents store.DocumentRepository, files store.DocumentStorage, cfg config.App, logger *logger.Logger) DocumentService {
	return &documentService{
		contracts: contracts,
		documents: documents,
		files:     files,
		validator: validators.NewPDFUploadValidator(limitOr(cfg.ImportMaxBytes, config.DefaultImportMaxBytes)),
		logger:    logger,
	}
}

// AttachContractPDF stores file and links it to the contract. The contract
// must belong to userID. When linking fails the stored file is removed.
func (s *documentService) AttachContractPDF(ctx context.Context, userID, contractID string, file models.UploadedFile) (models.ContractDocument, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.ContractDocument{}, ErrNoUserID
	}
	if err := s.validator.Validate(ctx, file); err != nil {
		return models.ContractDocument{}, err
	}

	if _, err := s.contracts.GetContract(ctx, userID, contractID); err != nil {
		return models.ContractDocument{}, fmt.Errorf("%w: %w", ErrDocumentAttach, err)
	}

	path, err := s.files.Save(ctx, userID, contractID, file)
	if err != nil {
		log.Err(err).Str("func", "*documentService.AttachContractPDF").Msg("error saving document file")
		return models.ContractDocument{}, fmt.Errorf("%w: %w", ErrDocumentAttach, err)
	}

	doc, err := s.documents.SaveDocument(ctx, models.ContractDocument{
		ContractID:  contractID,
		UserID:      userID,
		Path:        path,
		FileName:    file.Name,
		ContentType: "application/pdf",
		Size:        int64(len(file.Data)),
	})
	if err != nil {
		log.Err(err).Str("func", "*documentService.AttachContractPDF").Msg("error saving document record")
		if delErr := s.files.Delete(context.WithoutCancel(ctx), path); delErr != nil {
			log.Err(delErr).Str("func", "*documentService.AttachContractPDF").Str("path", path).Msg("orphaned document file")
		}
		return models.ContractDocument{}, fmt.Errorf("%w: %w", ErrDocumentAttach, err)
	}

	log.Info().Str("contract_id", contractID).Str("document_id", doc.ID).Msg("document attached")
	return doc, nil
}

// DeleteContractDocument removes the record first, then the file. A file that
// is already gone is not an error.
func (s *documentService) DeleteContractDocument(ctx context.Context, userID, documentID string) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return ErrNoUserID
	}

	doc, err := s.documents.GetDocument(ctx, userID, documentID)
	if err != nil {
		return err
	}

	if err = s.documents.DeleteDocument(ctx, userID, documentID); err != nil {
		log.Err(err).Str("func", "*documentService.DeleteContractDocument").Msg("error deleting document record")
		return err
	}

	if err = s.files.Delete(ctx, doc.Path); err != nil && !errors.Is(err, store.ErrDocumentNotFound) {
		log.Err(err).Str("func", "*documentService.DeleteContractDocument").Str("path", doc.Path).Msg("error deleting document file")
	}

	return nil
}
