package service

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-emlak-keeper/internal/adapter"
	"github.com/MKhiriev/go-emlak-keeper/internal/config"
	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/parser"
	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"github.com/MKhiriev/go-emlak-keeper/internal/validators"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

type importService struct {
	extractor adapter.DocumentExtractor

	importValidator  validators.Validator
	extractValidator validators.Validator

	logger *logger.Logger
}

// NewImportService constructs the [ImportService] for the review flow.
//
// Import uploads are limited to cfg.ImportMaxBytes and standalone extraction
// to cfg.ExtractMaxBytes; the package defaults apply when either is zero.
func NewImportService(extractor adapter.DocumentExtractor, cfg config.App, logger *logger.Logger) ImportService {
	return &importService{
		extractor:        extractor,
		importValidator:  validators.NewContractUploadValidator(limitOr(cfg.ImportMaxBytes, config.DefaultImportMaxBytes)),
		extractValidator: validators.NewExtractionUploadValidator(limitOr(cfg.ExtractMaxBytes, config.DefaultExtractMaxBytes)),
		logger:           logger,
	}
}

// ImportContract validates the upload, extracts its text, parses it and
// returns a review form pre-filled with every recognized value.
//
// Any extraction failure is returned as is and nothing is parsed.
func (s *importService) ImportContract(ctx context.Context, file models.UploadedFile) (models.ImportResult, error) {
	log := logger.FromContext(ctx)

	if err := s.importValidator.Validate(ctx, file); err != nil {
		return models.ImportResult{}, err
	}

	extraction, err := s.extractor.Extract(ctx, file)
	if err != nil {
		log.Err(err).Str("func", "*importService.ImportContract").Str("file", file.Name).Msg("extraction failed")
		return models.ImportResult{}, err
	}

	parsed := parser.ParseContractFromText(extraction.Text)
	count := parsed.CountExtractedFields()

	log.Info().
		Str("file", file.Name).
		Str("method", string(extraction.Method)).
		Int("fields", count).
		Msg("contract imported")

	return models.ImportResult{
		Parsed:        parsed,
		Form:          prefillForm(parsed),
		FieldCount:    count,
		LowConfidence: count < models.LowConfidenceThreshold,
		Extraction:    extraction.Metadata,
		Method:        extraction.Method,
	}, nil
}

// ExtractDocument validates the upload against the standalone limits and
// returns the raw extraction result without parsing it.
func (s *importService) ExtractDocument(ctx context.Context, file models.UploadedFile) (models.ExtractionResult, error) {
	if err := s.extractValidator.Validate(ctx, file); err != nil {
		return models.ExtractionResult{}, err
	}

	result, err := s.extractor.Extract(ctx, file)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*importService.ExtractDocument").Str("file", file.Name).Msg("extraction failed")
		return models.ExtractionResult{}, err
	}
	return result, nil
}

// ParseContractText parses already extracted text. It never fails; missing
// fields stay nil.
func (s *importService) ParseContractText(ctx context.Context, text string) models.ParsedContractData {
	return parser.ParseContractFromText(text)
}

// prefillForm copies recognized values into a review form. Values that do not
// convert (amounts, payment day) are left for manual entry.
func prefillForm(p models.ParsedContractData) models.ContractForm {
	get := func(f models.ParsedField) string {
		v, _ := p.Field(f)
		return v
	}

	form := models.ContractForm{
		OwnerName:     get(models.FieldOwnerName),
		OwnerTC:       get(models.FieldOwnerTC),
		OwnerIBAN:     get(models.FieldOwnerIBAN),
		OwnerPhone:    get(models.FieldOwnerPhone),
		OwnerEmail:    get(models.FieldOwnerEmail),
		TenantName:    get(models.FieldTenantName),
		TenantTC:      get(models.FieldTenantTC),
		TenantPhone:   get(models.FieldTenantPhone),
		TenantEmail:   get(models.FieldTenantEmail),
		TenantAddress: get(models.FieldTenantAddress),
		Address: models.AddressComponents{
			Mahalle:    get(models.FieldMahalle),
			CaddeSokak: get(models.FieldCaddeSokak),
			BinaNo:     get(models.FieldBinaNo),
			DaireNo:    get(models.FieldDaireNo),
			Ilce:       get(models.FieldIlce),
			Il:         get(models.FieldIl),
		},
		PropertyType: models.PropertyTypeRental,
		UsePurpose:   get(models.FieldUsePurpose),
		StartDate:    get(models.FieldStartDate),
		EndDate:      get(models.FieldEndDate),
	}

	if v, ok := utils.ParseTurkishAmount(get(models.FieldRentAmount)); ok {
		form.RentAmount = v
	}
	if v, ok := utils.ParseTurkishAmount(get(models.FieldDeposit)); ok {
		form.Deposit = &v
	}
	if day, err := strconv.Atoi(get(models.FieldPaymentDay)); err == nil && day >= 1 && day <= 31 {
		form.PaymentDay = &day
	}

	return form
}

func limitOr(v, def int64) int64 {
	if v > 0 {
		return v
	}
	return def
}
