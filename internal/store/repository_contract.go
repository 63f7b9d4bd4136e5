// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// contractRepository is the SQL implementation of [ContractRepository]. The
// same code serves postgres and sqlite; only the placeholder format and the
// error classifier of [DB] differ.
type contractRepository struct {
	db     *DB
	ids    utils.IDGenerator
	logger *logger.Logger
}

// NewContractRepository constructs the SQL [ContractRepository] on db.
//
// ids supplies the primary keys of every row the creation transaction
// inserts. A debug-level message is emitted at construction time.
func NewContractRepository(db *DB, ids utils.IDGenerator, logger *logger.Logger) ContractRepository {
	logger.Debug().Msg("creating contract repository")
	return &contractRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// FindActiveContractByAddress returns the most recent active contract of
// userID on the property with the given normalized address, or nil when there
// is none.
func (r *contractRepository) FindActiveContractByAddress(ctx context.Context, userID, normalizedAddress string) (*models.ActiveContractSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildActiveContractByAddressQuery(userID, normalizedAddress)
	if err != nil {
		log.Err(err).Str("func", "*contractRepository.FindActiveContractByAddress").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		summary    models.ActiveContractSummary
		start, end time.Time
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&summary.ContractID, &summary.TenantName, &start, &end, &summary.RentAmount, &summary.Currency)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		log.Err(err).Str("func", "*contractRepository.FindActiveContractByAddress").Msg("error looking up active contract")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}

	summary.StartDate = start.Format(models.DateLayout)
	summary.EndDate = end.Format(models.DateLayout)

	return &summary, nil
}

// CreateContractWithEntities runs the whole find-or-create in one transaction.
//
// Cancellation is honored until the transaction begins. After that the
// transaction runs on a context detached from the caller: a client that goes
// away mid-request must not leave the outcome undefined.
func (r *contractRepository) CreateContractWithEntities(ctx context.Context, req models.CreateContractRequest) (models.ContractCreationResult, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return models.ContractCreationResult{}, err
	}
	txCtx := context.WithoutCancel(ctx)

	tx, err := r.db.BeginTx(txCtx, nil)
	if err != nil {
		log.Err(err).Str("func", "*contractRepository.CreateContractWithEntities").Msg("error beginning transaction")
		return models.ContractCreationResult{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, r.db.classify(err))
	}
	defer tx.Rollback()

	result := models.ContractCreationResult{}

	// owner by (user_id, tc_hash)
	result.OwnerID, result.OwnerName, result.CreatedOwner, err = r.findOrCreate(txCtx, tx,
		func() (string, []any, error) {
			return r.db.buildPartyByTCHashQuery(tableOwners, req.UserID, req.Owner.TCHash)
		},
		func(id string) (string, []any, error) {
			return r.db.buildInsertOwnerQuery(id, req.UserID, req.Owner)
		},
		req.Owner.Name,
	)
	if err != nil {
		log.Err(err).Str("func", "*contractRepository.CreateContractWithEntities").Msg("error resolving owner")
		return models.ContractCreationResult{}, fmt.Errorf("owner: %w", err)
	}

	// tenant by (user_id, tc_hash)
	result.TenantID, result.TenantName, result.CreatedTenant, err = r.findOrCreate(txCtx, tx,
		func() (string, []any, error) {
			return r.db.buildPartyByTCHashQuery(tableTenants, req.UserID, req.Tenant.TCHash)
		},
		func(id string) (string, []any, error) {
			return r.db.buildInsertTenantQuery(id, req.UserID, req.Tenant)
		},
		req.Tenant.Name,
	)
	if err != nil {
		log.Err(err).Str("func", "*contractRepository.CreateContractWithEntities").Msg("error resolving tenant")
		return models.ContractCreationResult{}, fmt.Errorf("tenant: %w", err)
	}

	// property by (user_id, normalized_address)
	ownerID := result.OwnerID
	result.PropertyID, result.PropertyAddress, result.CreatedProperty, err = r.findOrCreate(txCtx, tx,
		func() (string, []any, error) {
			return r.db.buildPropertyByAddressQuery(req.UserID, req.Property.NormalizedAddress)
		},
		func(id string) (string, []any, error) {
			return r.db.buildInsertPropertyQuery(id, req.UserID, ownerID, req.Property)
		},
		req.Property.FullAddress,
	)
	if err != nil {
		log.Err(err).Str("func", "*contractRepository.CreateContractWithEntities").Msg("error resolving property")
		return models.ContractCreationResult{}, fmt.Errorf("property: %w", err)
	}

	contract := models.Contract{
		ID:         r.ids.Generate(),
		UserID:     req.UserID,
		OwnerID:    result.OwnerID,
		TenantID:   result.TenantID,
		PropertyID: result.PropertyID,
		StartDate:  req.Contract.StartDate,
		EndDate:    req.Contract.EndDate,
		RentAmount: req.Contract.RentAmount,
		Deposit:    req.Contract.Deposit,
		Currency:   req.Contract.Currency,
		Status:     models.ContractStatusActive,
	}
	if contract.Currency == "" {
		contract.Currency = models.DefaultCurrency
	}

	query, args, err := r.db.buildInsertContractQuery(contract)
	if err != nil {
		return models.ContractCreationResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	res, err := tx.ExecContext(txCtx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contractRepository.CreateContractWithEntities").
			Str("pg_code", postgresError(err)).Msg("error inserting contract")
		return models.ContractCreationResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		log.Error().Str("func", "*contractRepository.CreateContractWithEntities").Msg("contract insert affected no rows")
		return models.ContractCreationResult{}, ErrNoDataReturned
	}

	if req.Details != nil {
		details := *req.Details
		details.ContractID = contract.ID

		query, args, err = r.db.buildInsertContractDetailsQuery(details)
		if err != nil {
			return models.ContractCreationResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(txCtx, query, args...); err != nil {
			log.Err(err).Str("func", "*contractRepository.CreateContractWithEntities").Msg("error inserting contract details")
			return models.ContractCreationResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*contractRepository.CreateContractWithEntities").Msg("error committing transaction")
		return models.ContractCreationResult{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, r.db.classify(err))
	}

	result.ContractID = contract.ID
	result.Success = true

	log.Info().
		Str("contract_id", result.ContractID).
		Bool("created_owner", result.CreatedOwner).
		Bool("created_tenant", result.CreatedTenant).
		Bool("created_property", result.CreatedProperty).
		Msg("contract created")

	return result, nil
}

// findOrCreate selects (id, label) with find; when no row matches it inserts
// a row with a fresh id and returns the given label.
func (r *contractRepository) findOrCreate(
	ctx context.Context,
	tx *sql.Tx,
	find func() (string, []any, error),
	insert func(id string) (string, []any, error),
	label string,
) (string, string, bool, error) {
	query, args, err := find()
	if err != nil {
		return "", "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id, existing string
	err = tx.QueryRowContext(ctx, query, args...).Scan(&id, &existing)
	switch {
	case err == nil:
		return id, existing, false, nil
	case !errors.Is(err, sql.ErrNoRows):
		return "", "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}

	id = r.ids.Generate()
	query, args, err = insert(id)
	if err != nil {
		return "", "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return "", "", false, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	return id, label, true, nil
}

// GetContract returns [ErrContractNotFound] when the contract does not exist
// or belongs to another user.
func (r *contractRepository) GetContract(ctx context.Context, userID, contractID string) (models.Contract, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetContractQuery(userID, contractID)
	if err != nil {
		return models.Contract{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		c          models.Contract
		start, end time.Time
		deposit    sql.NullFloat64
		status     string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.UserID, &c.OwnerID, &c.TenantID, &c.PropertyID,
		&start, &end, &c.RentAmount, &deposit, &c.Currency, &status, &c.CreatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Contract{}, ErrContractNotFound
	case err != nil:
		log.Err(err).Str("func", "*contractRepository.GetContract").Msg("error reading contract")
		return models.Contract{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	c.StartDate = start.Format(models.DateLayout)
	c.EndDate = end.Format(models.DateLayout)
	c.Status = models.ContractStatus(status)
	if deposit.Valid {
		c.Deposit = &deposit.Float64
	}

	return c, nil
}
