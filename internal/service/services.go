package service

import (
	"github.com/MKhiriev/go-emlak-keeper/internal/adapter"
	"github.com/MKhiriev/go-emlak-keeper/internal/config"
	"github.com/MKhiriev/go-emlak-keeper/internal/crypto"
	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/store"
)

type Services struct {
	AuthService       AuthService
	AppInfoService    AppInfoService
	ImportService     ImportService
	ConflictService   ConflictService
	ContractService   ContractService
	SubmissionService SubmissionService
	DocumentService   DocumentService
	IdentityService   IdentityService
}

// NewServices wires every service of the application from the storages, the
// text extractor and the field cipher.
//
// ContractService is returned already wrapped with form validation; the
// submission flow receives the same wrapped instance.
func NewServices(storages *store.Storages, extractor adapter.DocumentExtractor, cipher crypto.FieldCipher, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	contractService := NewContractValidationService().Wrap(
		NewContractService(storages.ContractRepository, cipher, cfg.App, logger),
	)
	documentService := NewDocumentService(storages.ContractRepository, storages.DocumentRepository, storages.DocumentStorage, cfg.App, logger)

	return &Services{
		AuthService:     NewAuthService(cfg.App, logger),
		AppInfoService:  appInfo,
		ImportService:   NewImportService(extractor, cfg.App, logger),
		ConflictService: NewConflictService(storages.ContractRepository, storages.WarningTracker, logger),
		ContractService: contractService,
		SubmissionService: NewSubmissionService(
			contractService,
			documentService,
			storages.ContractRepository,
			storages.WarningTracker,
			cfg.App,
			logger,
		),
		DocumentService: documentService,
		IdentityService: NewIdentityService(storages.PartyRepository, cipher, logger),
	}, nil
}
