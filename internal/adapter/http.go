package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-emlak-keeper/internal/config"
	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

type httpExtractionAdapter struct {
	client   *utils.HTTPClient
	endpoint string
	token    string

	logger *logger.Logger
}

// extractionResponse mirrors the JSON body returned by the extraction endpoint.
type extractionResponse struct {
	Success    bool                      `json:"success"`
	Text       string                    `json:"text"`
	TokenCount *int                      `json:"token_count"`
	Method     models.ExtractionMethod   `json:"method"`
	Metadata   models.ExtractionMetadata `json:"metadata"`
	Error      string                    `json:"error"`
	Hint       string                    `json:"hint"`
}

// NewHTTPExtractionAdapter constructs the remote implementation of
// [DocumentExtractor]. The endpoint is taken from cfg.ExtractionURL as is
// (path included); a missing scheme defaults to http.
//
// Returns an error if cfg.ExtractionURL is empty or cannot be parsed.
func NewHTTPExtractionAdapter(cfg config.Adapter, logger *logger.Logger) (DocumentExtractor, error) {
	endpoint, err := normalizeBaseURL(cfg.ExtractionURL)
	if err != nil {
		return nil, fmt.Errorf("invalid extraction url: %w", err)
	}

	return &httpExtractionAdapter{
		client:   utils.NewHTTPClient(cfg.RequestTimeout),
		endpoint: endpoint,
		token:    strings.TrimSpace(cfg.ExtractionToken),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Extract implements [DocumentExtractor]. It uploads file as the multipart
// field "file" and normalizes the endpoint response.
func (h *httpExtractionAdapter) Extract(ctx context.Context, file models.UploadedFile) (models.ExtractionResult, error) {
	started := time.Now()

	req := h.client.R().
		SetContext(ctx).
		SetFileReader("file", file.Name, file.Reader())
	if h.token != "" {
		req.SetAuthToken(h.token)
	}

	resp, err := req.Post(h.endpoint)
	if err != nil {
		h.logger.Err(err).Str("func", "httpExtractionAdapter.Extract").Str("file", file.Name).Msg("extraction request failed")
		return models.ExtractionResult{}, fmt.Errorf("%w: %w", ErrExtractionUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "httpExtractionAdapter.Extract").Str("file", file.Name).Msg("extraction endpoint returned error")
		return models.ExtractionResult{}, err
	}

	var body extractionResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.ExtractionResult{}, fmt.Errorf("%w: decode response: %w", ErrExtractionFailed, err)
	}
	if !body.Success {
		message, hint := body.Error, body.Hint
		if message == "" {
			message = "extraction service reported failure"
		}
		return models.ExtractionResult{}, &ExtractionError{Status: resp.StatusCode(), Message: message, Hint: hint, Err: ErrExtractionFailed}
	}

	return finalizeResult(file, body.Text, body.TokenCount, body.Method, body.Metadata, started)
}

// finalizeResult rejects whitespace-only text and fills metadata the
// extractor left blank.
func finalizeResult(file models.UploadedFile, text string, tokens *int, method models.ExtractionMethod, meta models.ExtractionMetadata, started time.Time) (models.ExtractionResult, error) {
	if strings.TrimSpace(text) == "" {
		return models.ExtractionResult{}, ErrEmptyExtraction
	}

	if method == "" {
		method = models.ExtractionDigital
		if meta.OCRApplied {
			method = models.ExtractionOCRFallback
		}
	}
	if method == models.ExtractionOCRFallback {
		meta.OCRApplied = true
	}
	if meta.Filename == "" {
		meta.Filename = file.Name
	}
	if meta.FileSize == 0 {
		meta.FileSize = file.Size
	}
	if meta.FileType == "" {
		meta.FileType = file.ContentType
	}
	if meta.TextLength == 0 {
		meta.TextLength = len([]rune(text))
	}
	if meta.ExtractionTime == 0 {
		meta.ExtractionTime = time.Since(started).Seconds()
	}

	return models.ExtractionResult{
		Text:       text,
		TokenCount: tokens,
		Method:     method,
		Metadata:   meta,
	}, nil
}
