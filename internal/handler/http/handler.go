package http

import (
	"github.com/MKhiriev/go-emlak-keeper/internal/config"
	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/metrics"
	"github.com/MKhiriev/go-emlak-keeper/internal/service"
)

// multipartOverhead is added to the upload limits to leave room for the
// multipart envelope and the "form" field of a submission.
const multipartOverhead int64 = 1 << 20

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	importLimit  int64
	extractLimit int64

	logger *logger.Logger
}

// NewHandler constructs the HTTP [Handler]. Upload limits come from cfg;
// m receives request and pipeline metrics.
func NewHandler(services *service.Services, cfg config.App, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	if m == nil {
		m = metrics.New()
	}

	importLimit := cfg.ImportMaxBytes
	if importLimit <= 0 {
		importLimit = config.DefaultImportMaxBytes
	}
	extractLimit := cfg.ExtractMaxBytes
	if extractLimit <= 0 {
		extractLimit = config.DefaultExtractMaxBytes
	}

	return &Handler{
		services:     services,
		metrics:      m,
		importLimit:  importLimit,
		extractLimit: extractLimit,
		logger:       logger,
	}
}
