// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-emlak-keeper/internal/config"
	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/metrics"
	"github.com/MKhiriev/go-emlak-keeper/internal/service"
	"github.com/MKhiriev/go-emlak-keeper/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

type mockImportService struct {
	importFn  func(ctx context.Context, file models.UploadedFile) (models.ImportResult, error)
	extractFn func(ctx context.Context, file models.UploadedFile) (models.ExtractionResult, error)
	parseFn   func(ctx context.Context, text string) models.ParsedContractData
}

func (m *mockImportService) ImportContract(ctx context.Context, file models.UploadedFile) (models.ImportResult, error) {
	return m.importFn(ctx, file)
}

func (m *mockImportService) ExtractDocument(ctx context.Context, file models.UploadedFile) (models.ExtractionResult, error) {
	return m.extractFn(ctx, file)
}

func (m *mockImportService) ParseContractText(ctx context.Context, text string) models.ParsedContractData {
	return m.parseFn(ctx, text)
}

type mockConflictService struct {
	checkFn func(ctx context.Context, userID, sessionID string, address models.AddressComponents) (models.ConflictCheck, error)
}

func (m *mockConflictService) CheckAddress(ctx context.Context, userID, sessionID string, address models.AddressComponents) (models.ConflictCheck, error) {
	return m.checkFn(ctx, userID, sessionID, address)
}

type mockSubmissionService struct {
	submitFn func(ctx context.Context, submission models.ContractSubmission) (models.SubmissionResult, error)
}

func (m *mockSubmissionService) SubmitContract(ctx context.Context, submission models.ContractSubmission) (models.SubmissionResult, error) {
	return m.submitFn(ctx, submission)
}

type mockDocumentService struct {
	attachFn func(ctx context.Context, userID, contractID string, file models.UploadedFile) (models.ContractDocument, error)
	deleteFn func(ctx context.Context, userID, documentID string) error
}

func (m *mockDocumentService) AttachContractPDF(ctx context.Context, userID, contractID string, file models.UploadedFile) (models.ContractDocument, error) {
	return m.attachFn(ctx, userID, contractID, file)
}

func (m *mockDocumentService) DeleteContractDocument(ctx context.Context, userID, documentID string) error {
	return m.deleteFn(ctx, userID, documentID)
}

type mockIdentityService struct {
	ownerFn  func(ctx context.Context, userID, ownerID string) (models.RevealedIdentity, error)
	tenantFn func(ctx context.Context, userID, tenantID string) (models.RevealedIdentity, error)
}

func (m *mockIdentityService) RevealOwnerIdentity(ctx context.Context, userID, ownerID string) (models.RevealedIdentity, error) {
	return m.ownerFn(ctx, userID, ownerID)
}

func (m *mockIdentityService) RevealTenantIdentity(ctx context.Context, userID, tenantID string) (models.RevealedIdentity, error) {
	return m.tenantFn(ctx, userID, tenantID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testUserID = "user-1"

type testServer struct {
	router http.Handler
	token  string

	imports     *mockImportService
	conflicts   *mockConflictService
	submissions *mockSubmissionService
	documents   *mockDocumentService
	identities  *mockIdentityService
	metrics     *metrics.Metrics
}

// newTestServer wires a Handler with a real AuthService and mock domain
// services. Tests override the mock functions they need.
func newTestServer(t *testing.T, cfg config.App) *testServer {
	t.Helper()

	cfg.TokenSignKey = "handler-test-key"
	cfg.TokenIssuer = "go-emlak-keeper"
	cfg.TokenDuration = time.Hour
	auth := service.NewAuthService(cfg, logger.Nop())

	token, err := auth.CreateToken(context.Background(), testUserID)
	require.NoError(t, err)

	ts := &testServer{
		token:       token.SignedString,
		imports:     &mockImportService{},
		conflicts:   &mockConflictService{},
		submissions: &mockSubmissionService{},
		documents:   &mockDocumentService{},
		identities:  &mockIdentityService{},
		metrics:     metrics.New(),
	}

	svcs := &service.Services{
		AuthService:       auth,
		AppInfoService:    &mockAppInfoService{version: "v1.2.3"},
		ImportService:     ts.imports,
		ConflictService:   ts.conflicts,
		SubmissionService: ts.submissions,
		DocumentService:   ts.documents,
		IdentityService:   ts.identities,
	}
	ts.router = NewHandler(svcs, cfg, ts.metrics, logger.Nop()).Init()

	return ts
}

// do sends the request through the router with the bearer token set.
func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set("Authorization", "Bearer "+ts.token)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// scrape returns the exposition text served on /metrics.
func (ts *testServer) scrape(t *testing.T) string {
	t.Helper()

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// multipartRequest builds a multipart body from plain fields and files keyed
// by field name.
func multipartRequest(t *testing.T, target string, fields map[string]string, files map[string]models.UploadedFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}
	for name, file := range files {
		part, err := mw.CreateFormFile(name, file.Name)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(file.Data))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func testPDF() models.UploadedFile {
	data := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")
	return models.UploadedFile{Name: "sozlesme.pdf", Data: data, Size: int64(len(data))}
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func ptr[T any](v T) *T {
	return &v
}
