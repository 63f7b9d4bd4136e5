// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-emlak-keeper/internal/config"
	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
)

// Storages bundles every persistence dependency of the services. The backend
// is chosen once from config and passed down explicitly.
type Storages struct {
	ContractRepository ContractRepository
	DocumentRepository DocumentRepository
	PartyRepository    PartyRepository
	DocumentStorage    DocumentStorage
	WarningTracker     WarningTracker

	closers []func() error
}

// NewStorages opens the configured backend, runs migrations when asked to and
// builds the document storage and warning tracker.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	ids := utils.NewUUIDGenerator()
	s := &Storages{}

	switch cfg.Backend {
	case config.BackendMemory:
		repo := NewMemoryRepository(ids)
		s.ContractRepository, s.DocumentRepository, s.PartyRepository = repo, repo, repo
		log.Warn().Str("func", "NewStorages").Msg("using in-memory storage, data is lost on restart")

	case config.BackendPostgres, config.BackendSQLite:
		db, err := ConnectDB(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db.Close)

		if cfg.DB.Migrate {
			if err = db.Migrate(); err != nil {
				log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
				return nil, errors.Join(err, s.Close())
			}
		}

		s.ContractRepository = NewContractRepository(db, ids, log)
		s.DocumentRepository = NewDocumentRepository(db, ids, log)
		s.PartyRepository = NewPartyRepository(db, log)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Backend)
	}

	if cfg.Files.DocumentsDir != "" {
		documents, err := NewFileDocumentStorage(cfg.Files.DocumentsDir, ids, log)
		if err != nil {
			return nil, errors.Join(err, s.Close())
		}
		s.DocumentStorage = documents
	} else {
		s.DocumentStorage = NewMemoryDocumentStorage(ids)
	}

	if cfg.Redis.Address != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error connecting redis")
			return nil, errors.Join(fmt.Errorf("error connecting redis: %w", err), client.Close(), s.Close())
		}
		s.closers = append(s.closers, client.Close)
		s.WarningTracker = NewRedisWarningTracker(client, cfg.Redis.WarningTTL)
	} else {
		s.WarningTracker = NewMemoryWarningTracker(cfg.Redis.WarningTTL)
	}

	return s, nil
}

// ConnectDB opens the relational backend selected by cfg.Backend.
func ConnectDB(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		return NewConnectPostgres(ctx, cfg.DB, log)
	case config.BackendSQLite:
		return NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Backend)
	}
}

// Close releases the database and redis connections.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	s.closers = nil

	return errors.Join(errs...)
}
