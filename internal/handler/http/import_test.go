package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-emlak-keeper/internal/adapter"
	"github.com/MKhiriev/go-emlak-keeper/internal/config"
	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"github.com/MKhiriev/go-emlak-keeper/internal/validators"
	"github.com/MKhiriev/go-emlak-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportContract_Success(t *testing.T) {
	ts := newTestServer(t, config.App{})
	file := testPDF()

	ts.imports.importFn = func(_ context.Context, got models.UploadedFile) (models.ImportResult, error) {
		assert.Equal(t, file.Name, got.Name)
		assert.Equal(t, file.Data, got.Data)
		return models.ImportResult{
			Form:       models.ContractForm{OwnerName: "Mehmet Demir"},
			FieldCount: 9,
			Method:     models.ExtractionDigital,
		}, nil
	}

	rec := ts.do(multipartRequest(t, "/api/contracts/import", nil, map[string]models.UploadedFile{"file": file}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeBody[models.ImportResult](t, rec)
	assert.Equal(t, "Mehmet Demir", got.Form.OwnerName)
	assert.Equal(t, 9, got.FieldCount)
	assert.False(t, got.LowConfidence)
}

func TestImportContract_MissingFile(t *testing.T) {
	ts := newTestServer(t, config.App{})

	rec := ts.do(multipartRequest(t, "/api/contracts/import", map[string]string{"note": "x"}, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMissingFile.Error())
}

func TestImportContract_NotMultipart(t *testing.T) {
	ts := newTestServer(t, config.App{})

	req := httptest.NewRequest(http.MethodPost, "/api/contracts/import", strings.NewReader("plain"))
	req.Header.Set("Content-Type", "text/plain")
	rec := ts.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportContract_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantHint   string
	}{
		{name: "unsupported type", err: validators.ErrUnsupportedFileType, wantStatus: http.StatusUnsupportedMediaType},
		{name: "too large", err: validators.ErrFileTooLarge, wantStatus: http.StatusRequestEntityTooLarge},
		{name: "empty extraction", err: adapter.ErrEmptyExtraction, wantStatus: http.StatusUnprocessableEntity},
		{
			name:       "extraction unavailable",
			err:        &adapter.ExtractionError{Err: adapter.ErrExtractionUnavailable, Hint: "try again later"},
			wantStatus: http.StatusServiceUnavailable,
			wantHint:   "try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, config.App{})
			ts.imports.importFn = func(context.Context, models.UploadedFile) (models.ImportResult, error) {
				return models.ImportResult{}, tt.err
			}

			rec := ts.do(multipartRequest(t, "/api/contracts/import", nil, map[string]models.UploadedFile{"file": testPDF()}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody[utils.ErrorResponse](t, rec)
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, tt.wantHint, body.Hint)
			assert.Contains(t, ts.scrape(t), `emlak_imports_total{low_confidence="false",method="",outcome="failed"} 1`)
		})
	}
}

// Тело больше лимита отклоняется до вызова сервиса
func TestImportContract_BodyTooLarge(t *testing.T) {
	ts := newTestServer(t, config.App{ImportMaxBytes: 16})
	ts.imports.importFn = func(context.Context, models.UploadedFile) (models.ImportResult, error) {
		t.Fatal("service must not be called")
		return models.ImportResult{}, nil
	}

	big := models.UploadedFile{Name: "big.pdf", Data: make([]byte, multipartOverhead+64)}
	rec := ts.do(multipartRequest(t, "/api/contracts/import", nil, map[string]models.UploadedFile{"file": big}))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestExtractDocument(t *testing.T) {
	ts := newTestServer(t, config.App{})
	ts.imports.extractFn = func(context.Context, models.UploadedFile) (models.ExtractionResult, error) {
		return models.ExtractionResult{Text: "Kiracı: Ayşe Kaya", Method: models.ExtractionLocalPDF}, nil
	}

	rec := ts.do(multipartRequest(t, "/api/documents/extract", nil, map[string]models.UploadedFile{"file": testPDF()}))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.ExtractionResult](t, rec)
	assert.Equal(t, "Kiracı: Ayşe Kaya", got.Text)
	assert.Equal(t, models.ExtractionLocalPDF, got.Method)
}

func TestParseContractText(t *testing.T) {
	parsed := models.ParsedContractData{
		Tenant: &models.ParsedParty{Name: ptr("Ayşe Kaya")},
	}

	tests := []struct {
		name       string
		target     string
		wantLegacy bool
	}{
		{name: "nested shape", target: "/api/contracts/parse"},
		{name: "legacy shape", target: "/api/contracts/parse?shape=legacy", wantLegacy: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, config.App{})
			ts.imports.parseFn = func(_ context.Context, text string) models.ParsedContractData {
				assert.Equal(t, "Kiracı: Ayşe Kaya", text)
				return parsed
			}

			rec := ts.do(jsonRequest(t, http.MethodPost, tt.target, parseTextRequest{Text: "Kiracı: Ayşe Kaya"}))

			require.Equal(t, http.StatusOK, rec.Code)
			got := decodeBody[models.ParsedContractData](t, rec)
			require.NotNil(t, got.Tenant)
			assert.Equal(t, "Ayşe Kaya", *got.Tenant.Name)
			if tt.wantLegacy {
				require.NotNil(t, got.TenantName)
				assert.Equal(t, "Ayşe Kaya", *got.TenantName)
			} else {
				assert.Nil(t, got.TenantName)
			}
		})
	}
}

func TestParseContractText_InvalidJSON(t *testing.T) {
	ts := newTestServer(t, config.App{})

	req := httptest.NewRequest(http.MethodPost, "/api/contracts/parse", strings.NewReader("{"))
	rec := ts.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
