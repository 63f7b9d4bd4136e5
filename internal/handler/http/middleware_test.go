package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-emlak-keeper/internal/config"
	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"github.com/MKhiriev/go-emlak-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// auth
// ─────────────────────────────────────────────

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{name: "no header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "blank token", header: "Bearer    ", wantErr: ErrEmptyToken},
		{name: "garbage token", header: "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, config.App{})

			req := httptest.NewRequest(http.MethodGet, "/api/owners/o-1/identity", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			ts.router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr.Error(), decodeBody[utils.ErrorResponse](t, rec).Error)
			}
		})
	}
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "Bearer  abc ", want: "abc"},
		{header: "Bearer  ", wantErr: ErrEmptyToken},
		{header: "Bearer \t", wantErr: ErrEmptyToken},
		{header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Token abc", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithSessionID(t *testing.T) {
	var got string
	var ok bool
	h := withSessionID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = utils.GetSessionIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(sessionIDHeader, " s-42 ")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, ok)
	assert.Equal(t, "s-42", got)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

// ─────────────────────────────────────────────
// trace id
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	ts := newTestServer(t, config.App{})

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	generated := rec.Header().Get(traceIDHeader)
	assert.Len(t, generated, 36)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "client-trace")
	rec = httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	assert.Equal(t, "client-trace", rec.Header().Get(traceIDHeader))
}

// ─────────────────────────────────────────────
// logging
// ─────────────────────────────────────────────

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	lw := &responseWriter{ResponseWriter: rec}

	lw.WriteHeader(http.StatusAccepted)
	lw.WriteHeader(http.StatusInternalServerError)
	_, err := lw.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, lw.status)
	assert.Equal(t, 5, lw.size)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	lw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _ = lw.Write([]byte("x"))

	assert.Equal(t, http.StatusOK, lw.status)
}

// ─────────────────────────────────────────────
// upload limits and checksum
// ─────────────────────────────────────────────

func TestLimitBody(t *testing.T) {
	h := limitBody(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(r.Body); err != nil {
			writeError(w, r, err, "test")
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("abcd")))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("abcde")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestWithContentChecksum(t *testing.T) {
	body := []byte("contract body")

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "no header", wantStatus: http.StatusOK},
		{name: "matching", header: utils.Checksum(body), wantStatus: http.StatusOK},
		{name: "matching upper case", header: strings.ToUpper(utils.Checksum(body)), wantStatus: http.StatusOK},
		{name: "mismatch", header: utils.Checksum([]byte("other")), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen []byte
			h := withContentChecksum(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var buf bytes.Buffer
				_, _ = buf.ReadFrom(r.Body)
				seen = buf.Bytes()
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
			if tt.header != "" {
				req.Header.Set(checksumHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				// тело доступно обработчику целиком
				assert.Equal(t, body, seen)
			}
		})
	}
}

// Контрольная сумма проверяется на маршруте загрузки
func TestUploadRoute_ChecksumMismatch(t *testing.T) {
	ts := newTestServer(t, config.App{})
	ts.imports.importFn = func(context.Context, models.UploadedFile) (models.ImportResult, error) {
		t.Fatal("service must not be called")
		return models.ImportResult{}, nil
	}

	req := multipartRequest(t, "/api/contracts/import", nil, map[string]models.UploadedFile{"file": testPDF()})
	req.Header.Set(checksumHeader, utils.Checksum([]byte("something else")))
	rec := ts.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrChecksumMismatch.Error(), decodeBody[utils.ErrorResponse](t, rec).Error)
}

// ─────────────────────────────────────────────
// method check
// ─────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Delete("/api/documents/{documentID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"registered", http.MethodGet, "/api/version", http.StatusOK},
		{"wrong method", http.MethodPost, "/api/version", http.StatusNotFound},
		{"wrong method on parameterised route", http.MethodGet, "/api/documents/d-1", http.StatusNotFound},
		{"unknown path", http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusNotFound {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			}
		})
	}
}
