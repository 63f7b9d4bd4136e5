package service

import (
	"context"

	"github.com/MKhiriev/go-emlak-keeper/internal/crypto"
	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/store"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

const (
	identityFieldTC   = "tc"
	identityFieldIBAN = "iban"
)

type identityService struct {
	parties store.PartyRepository
	cipher  crypto.FieldCipher

	logger *logger.Logger
}

// NewIdentityService constructs the [IdentityService] that decrypts owner and
// tenant identity numbers on demand. Nothing it returns is cached.
func NewIdentityService(parties store.PartyRepository, cipher crypto.FieldCipher, logger *logger.Logger) IdentityService {
	return &identityService{
		parties: parties,
		cipher:  cipher,
		logger:  logger,
	}
}

// RevealOwnerIdentity decrypts the owner's TC and IBAN. A field that fails to
// decrypt is listed in Denied; the error is ErrIdentityUnavailable only when
// nothing could be revealed.
func (s *identityService) RevealOwnerIdentity(ctx context.Context, userID, ownerID string) (models.RevealedIdentity, error) {
	if userID == "" {
		return models.RevealedIdentity{}, ErrNoUserID
	}

	owner, err := s.parties.GetOwner(ctx, userID, ownerID)
	if err != nil {
		return models.RevealedIdentity{}, err
	}

	identity := models.RevealedIdentity{ID: owner.ID, Name: owner.Name}
	identity.TC = s.reveal(ctx, &identity, identityFieldTC, owner.TCEncrypted)
	if owner.IBANEncrypted != nil {
		identity.IBAN = s.reveal(ctx, &identity, identityFieldIBAN, *owner.IBANEncrypted)
	}

	return identity, s.unavailable(identity)
}

// RevealTenantIdentity is the tenant counterpart of RevealOwnerIdentity.
// Tenants carry no IBAN, so only the TC can be denied.
func (s *identityService) RevealTenantIdentity(ctx context.Context, userID, tenantID string) (models.RevealedIdentity, error) {
	if userID == "" {
		return models.RevealedIdentity{}, ErrNoUserID
	}

	tenant, err := s.parties.GetTenant(ctx, userID, tenantID)
	if err != nil {
		return models.RevealedIdentity{}, err
	}

	identity := models.RevealedIdentity{ID: tenant.ID, Name: tenant.Name}
	identity.TC = s.reveal(ctx, &identity, identityFieldTC, tenant.TCEncrypted)

	return identity, s.unavailable(identity)
}

func (s *identityService) reveal(ctx context.Context, identity *models.RevealedIdentity, field, encrypted string) *string {
	plain, err := s.cipher.Decrypt(encrypted)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*identityService.reveal").
			Str("id", identity.ID).
			Str("field", field).
			Msg("access denied: decryption failed")
		identity.Denied = append(identity.Denied, field)
		return nil
	}
	return &plain
}

func (s *identityService) unavailable(identity models.RevealedIdentity) error {
	if identity.TC == nil && identity.IBAN == nil && len(identity.Denied) > 0 {
		return ErrIdentityUnavailable
	}
	return nil
}
