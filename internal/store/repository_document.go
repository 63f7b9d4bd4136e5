package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

type documentRepository struct {
	db     *DB
	ids    utils.IDGenerator
	logger *logger.Logger
}

// NewDocumentRepository constructs the SQL [DocumentRepository] for
// contract_documents rows. ids supplies document ids.
func NewDocumentRepository(db *DB, ids utils.IDGenerator, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// SaveDocument assigns an id and upload time when they are missing.
func (r *documentRepository) SaveDocument(ctx context.Context, doc models.ContractDocument) (models.ContractDocument, error) {
	log := logger.FromContext(ctx)

	if doc.ID == "" {
		doc.ID = r.ids.Generate()
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now().UTC()
	}

	query, args, err := r.db.buildInsertDocumentQuery(doc)
	if err != nil {
		return models.ContractDocument{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*documentRepository.SaveDocument").Msg("error inserting document")
		return models.ContractDocument{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	return doc, nil
}

func (r *documentRepository) GetDocument(ctx context.Context, userID, documentID string) (models.ContractDocument, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetDocumentQuery(userID, documentID)
	if err != nil {
		return models.ContractDocument{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var doc models.ContractDocument
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&doc.ID, &doc.ContractID, &doc.UserID, &doc.Path, &doc.FileName, &doc.ContentType, &doc.Size, &doc.UploadedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.ContractDocument{}, ErrDocumentNotFound
	case err != nil:
		log.Err(err).Str("func", "*documentRepository.GetDocument").Msg("error reading document")
		return models.ContractDocument{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doc, nil
}

func (r *documentRepository) DeleteDocument(ctx context.Context, userID, documentID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteDocumentQuery(userID, documentID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.DeleteDocument").Msg("error deleting document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrDocumentNotFound
	}

	return nil
}
