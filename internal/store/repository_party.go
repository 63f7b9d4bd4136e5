package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

type partyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPartyRepository constructs the read-only SQL [PartyRepository].
func NewPartyRepository(db *DB, logger *logger.Logger) PartyRepository {
	logger.Debug().Msg("creating party repository")
	return &partyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *partyRepository) GetOwner(ctx context.Context, userID, ownerID string) (models.Owner, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetPartyQuery(tableOwners, ownerColumns, userID, ownerID)
	if err != nil {
		return models.Owner{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		o                  models.Owner
		iban, phone, email sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&o.ID, &o.UserID, &o.Name, &o.TCEncrypted, &o.TCHash, &iban, &phone, &email, &o.CreatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Owner{}, ErrOwnerNotFound
	case err != nil:
		log.Err(err).Str("func", "*partyRepository.GetOwner").Msg("error reading owner")
		return models.Owner{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	o.IBANEncrypted = nullString(iban)
	o.Phone = nullString(phone)
	o.Email = nullString(email)

	return o, nil
}

func (r *partyRepository) GetTenant(ctx context.Context, userID, tenantID string) (models.Tenant, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetPartyQuery(tableTenants, tenantColumns, userID, tenantID)
	if err != nil {
		return models.Tenant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		t                     models.Tenant
		phone, email, address sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&t.ID, &t.UserID, &t.Name, &t.TCEncrypted, &t.TCHash, &phone, &email, &address, &t.CreatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Tenant{}, ErrTenantNotFound
	case err != nil:
		log.Err(err).Str("func", "*partyRepository.GetTenant").Msg("error reading tenant")
		return models.Tenant{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	t.Phone = nullString(phone)
	t.Email = nullString(email)
	t.Address = nullString(address)

	return t, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
