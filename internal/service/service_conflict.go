package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/store"
	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

type conflictService struct {
	contracts store.ContractRepository
	warnings  store.WarningTracker

	logger *logger.Logger
}

// NewConflictService constructs the advisory duplicate-address check.
//
// contracts answers the active-contract lookup. warnings holds the per-session
// "already warned" state, so the same active contract is reported once per
// review session. Both a redis and an in-process tracker satisfy it.
func NewConflictService(contracts store.ContractRepository, warnings store.WarningTracker, logger *logger.Logger) ConflictService {
	return &conflictService{
		contracts: contracts,
		warnings:  warnings,
		logger:    logger,
	}
}

// CheckAddress looks up an active contract for address. The result is
// advisory: it never blocks creation by itself.
//
// Notify is set only the first time a contract id is reported for sessionID.
// An incomplete address resets the session so the next hit warns again.
func (s *conflictService) CheckAddress(ctx context.Context, userID, sessionID string, address models.AddressComponents) (models.ConflictCheck, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.ConflictCheck{}, ErrNoUserID
	}

	if !utils.IsValidAddress(address) {
		if err := s.clear(ctx, sessionID); err != nil {
			log.Err(err).Str("func", "*conflictService.CheckAddress").Msg("error clearing warning state")
		}
		return models.ConflictCheck{Complete: false}, nil
	}

	normalized := utils.NormalizeAddress(address)
	active, err := s.contracts.FindActiveContractByAddress(ctx, userID, normalized)
	if err != nil {
		log.Err(err).Str("func", "*conflictService.CheckAddress").Msg("active contract lookup failed")
		return models.ConflictCheck{}, fmt.Errorf("active contract lookup: %w", err)
	}

	result := models.ConflictCheck{
		Complete:          true,
		NormalizedAddress: normalized,
		ActiveContract:    active,
	}
	if active == nil || sessionID == "" {
		// без сессии предупреждаем каждый раз
		result.Notify = active != nil
		return result, nil
	}

	last, err := s.warnings.SwapWarned(ctx, sessionID, active.ContractID)
	if err != nil {
		// tracker is best effort; warn rather than stay silent
		log.Err(err).Str("func", "*conflictService.CheckAddress").Msg("error updating warning state")
		result.Notify = true
		return result, nil
	}
	result.Notify = last != active.ContractID

	return result, nil
}

func (s *conflictService) clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.warnings.Clear(ctx, sessionID)
}
