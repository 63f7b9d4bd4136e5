// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-emlak-keeper/internal/config"
	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpExtractionAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL, token string) *httpExtractionAdapter {
	t.Helper()
	cfg := config.Adapter{ExtractionURL: serverURL + "/functions/v1/extract-text", ExtractionToken: token}

	a, err := NewHTTPExtractionAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpExtractionAdapter)
}

func testFile() models.UploadedFile {
	data := []byte("%PDF-1.4 fake")
	return models.UploadedFile{Name: "kira.pdf", ContentType: "application/pdf", Size: int64(len(data)), Data: data}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// ── Extract ─────────────────────────────────────────────────────────────────

func TestExtract_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/functions/v1/extract-text", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		content, _ := io.ReadAll(f)
		assert.Equal(t, "kira.pdf", hdr.Filename)
		assert.Equal(t, "%PDF-1.4 fake", string(content))

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"text":    "Kiracı: Ahmet Yılmaz",
			"method":  "OCR_FALLBACK",
			"metadata": map[string]any{
				"filename":       "kira.pdf",
				"fileSize":       13,
				"fileType":       "application/pdf",
				"extractionTime": 1.5,
				"textLength":     20,
				"ocrApplied":     true,
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "secret")
	got, err := a.Extract(context.Background(), testFile())

	require.NoError(t, err)
	assert.Equal(t, "Kiracı: Ahmet Yılmaz", got.Text)
	assert.Equal(t, models.ExtractionOCRFallback, got.Method)
	assert.True(t, got.Metadata.OCRApplied)
	assert.Equal(t, 1.5, got.Metadata.ExtractionTime)
	assert.Nil(t, got.TokenCount)
}

func TestExtract_FillsMissingMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "text": "Kira Bedeli: 15000", "token_count": 7})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.Extract(context.Background(), testFile())

	require.NoError(t, err)
	assert.Equal(t, models.ExtractionDigital, got.Method)
	assert.Equal(t, "kira.pdf", got.Metadata.Filename)
	assert.Equal(t, int64(13), got.Metadata.FileSize)
	assert.Equal(t, 18, got.Metadata.TextLength)
	require.NotNil(t, got.TokenCount)
	assert.Equal(t, 7, *got.TokenCount)
}

func TestExtract_WhitespaceText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "text": " \n\t "})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Extract(context.Background(), testFile())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyExtraction)
}

func TestExtract_FailurePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "error": "Desteklenmeyen dosya", "hint": "PDF yükleyin"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Extract(context.Background(), testFile())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionFailed)

	var extErr *ExtractionError
	require.True(t, errors.As(err, &extErr))
	assert.Equal(t, "Desteklenmeyen dosya", extErr.Message)
	assert.Equal(t, "PDF yükleyin", extErr.Hint)
}

func TestExtract_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
		msg    string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"success":false,"error":"invalid token"}`, ErrUnauthorized, "invalid token"},
		{"unprocessable", http.StatusUnprocessableEntity, `{"success":false,"error":"no text"}`, ErrEmptyExtraction, "no text"},
		{"unavailable", http.StatusServiceUnavailable, `{"message":"overloaded"}`, ErrExtractionUnavailable, "overloaded"},
		{"plain body", http.StatusInternalServerError, "boom", ErrExtractionFailed, "boom"},
		{"empty body", http.StatusBadRequest, "", ErrExtractionFailed, "Bad Request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, "")
			_, err := a.Extract(context.Background(), testFile())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var extErr *ExtractionError
			require.True(t, errors.As(err, &extErr))
			assert.Equal(t, tt.status, extErr.Status)
			assert.Equal(t, tt.msg, extErr.Message)
		})
	}
}

func TestExtract_ServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, "")
	_, err := a.Extract(context.Background(), testFile())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionUnavailable)
}

func TestNewHTTPExtractionAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPExtractionAdapter(config.Adapter{ExtractionURL: "  "}, logger.Nop())
	require.Error(t, err)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"keeps path", "https://x.supabase.co/functions/v1/extract-text", "https://x.supabase.co/functions/v1/extract-text", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
