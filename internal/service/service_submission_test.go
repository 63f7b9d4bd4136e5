package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-emlak-keeper/internal/config"
	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/mock"
	"github.com/MKhiriev/go-emlak-keeper/internal/validators"
	"github.com/MKhiriev/go-emlak-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Stubs for the collaborating services
// ─────────────────────────────────────────────

type stubContractService struct {
	calls  int
	result models.ContractCreationResult
	err    error
}

func (s *stubContractService) CreateContractWithEntities(ctx context.Context, form models.ContractForm, userID string) (models.ContractCreationResult, error) {
	s.calls++
	return s.result, s.err
}

type stubDocumentService struct {
	attachFn func(ctx context.Context, userID, contractID string, file models.UploadedFile) (models.ContractDocument, error)
}

func (s *stubDocumentService) AttachContractPDF(ctx context.Context, userID, contractID string, file models.UploadedFile) (models.ContractDocument, error) {
	if s.attachFn != nil {
		return s.attachFn(ctx, userID, contractID, file)
	}
	return models.ContractDocument{}, nil
}

func (s *stubDocumentService) DeleteContractDocument(ctx context.Context, userID, documentID string) error {
	return nil
}

type submissionFixture struct {
	svc       SubmissionService
	contracts *stubContractService
	documents *stubDocumentService
	repo      *mock.MockContractRepository
	warnings  *mock.MockWarningTracker
}

func newSubmissionFixture(ctrl *gomock.Controller) *submissionFixture {
	f := &submissionFixture{
		contracts: &stubContractService{result: models.ContractCreationResult{Success: true, ContractID: "c-1"}},
		documents: &stubDocumentService{},
		repo:      mock.NewMockContractRepository(ctrl),
		warnings:  mock.NewMockWarningTracker(ctrl),
	}
	f.svc = NewSubmissionService(f.contracts, f.documents, f.repo, f.warnings, config.App{}, logger.Nop())
	return f
}

func submission() models.ContractSubmission {
	return models.ContractSubmission{UserID: "user-1", SessionID: "s-1", Form: validForm()}
}

func TestSubmissionService_Success_NoDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubmissionFixture(ctrl)
	f.repo.EXPECT().FindActiveContractByAddress(gomock.Any(), "user-1", gomock.Any()).Return(nil, nil)
	f.warnings.EXPECT().Clear(gomock.Any(), "s-1").Return(nil)

	got, err := f.svc.SubmitContract(context.Background(), submission())

	require.NoError(t, err)
	assert.Equal(t, "c-1", got.Creation.ContractID)
	assert.False(t, got.DocumentAttached)
	assert.Empty(t, got.Warning)
	assert.Equal(t, 1, f.contracts.calls)
}

func TestSubmissionService_InvalidForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubmissionFixture(ctrl)
	sub := submission()
	sub.Form.TenantName = ""

	_, err := f.svc.SubmitContract(context.Background(), sub)

	assert.ErrorIs(t, err, validators.ErrInvalidContractForm)
	assert.Zero(t, f.contracts.calls)
}

func TestSubmissionService_ConflictRequiresConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubmissionFixture(ctrl)
	active := activeSummary("c-0")
	f.repo.EXPECT().FindActiveContractByAddress(gomock.Any(), gomock.Any(), gomock.Any()).Return(active, nil)

	_, err := f.svc.SubmitContract(context.Background(), submission())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflictConfirmationRequired)

	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, active, conflict.Contract)
	assert.Zero(t, f.contracts.calls, "creation must not start without confirmation")
}

func TestSubmissionService_ConflictConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubmissionFixture(ctrl)
	active := activeSummary("c-0")
	f.repo.EXPECT().FindActiveContractByAddress(gomock.Any(), gomock.Any(), gomock.Any()).Return(active, nil)
	f.warnings.EXPECT().Clear(gomock.Any(), "s-1").Return(nil)

	sub := submission()
	sub.ConfirmConflict = true

	got, err := f.svc.SubmitContract(context.Background(), sub)

	require.NoError(t, err)
	assert.Equal(t, active, got.Conflict)
	assert.Equal(t, 1, f.contracts.calls)
}

func TestSubmissionService_CreationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubmissionFixture(ctrl)
	f.contracts.err = ErrContractCreation
	f.repo.EXPECT().FindActiveContractByAddress(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := f.svc.SubmitContract(context.Background(), submission())

	assert.ErrorIs(t, err, ErrContractCreation)
}

func TestSubmissionService_DocumentAttached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubmissionFixture(ctrl)
	f.repo.EXPECT().FindActiveContractByAddress(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.warnings.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
	f.documents.attachFn = func(_ context.Context, userID, contractID string, _ models.UploadedFile) (models.ContractDocument, error) {
		assert.Equal(t, "user-1", userID)
		assert.Equal(t, "c-1", contractID)
		return models.ContractDocument{ID: "d-1", ContractID: contractID}, nil
	}

	sub := submission()
	file := testPDF()
	sub.Document = &file

	got, err := f.svc.SubmitContract(context.Background(), sub)

	require.NoError(t, err)
	assert.True(t, got.DocumentAttached)
	require.NotNil(t, got.Document)
	assert.Equal(t, "d-1", got.Document.ID)
}

// Частичный успех: договор создан, документ нет
func TestSubmissionService_DocumentAttachFails_PartialSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubmissionFixture(ctrl)
	f.repo.EXPECT().FindActiveContractByAddress(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.warnings.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
	f.documents.attachFn = func(context.Context, string, string, models.UploadedFile) (models.ContractDocument, error) {
		return models.ContractDocument{}, ErrDocumentAttach
	}

	sub := submission()
	file := testPDF()
	sub.Document = &file

	got, err := f.svc.SubmitContract(context.Background(), sub)

	require.NoError(t, err)
	assert.Equal(t, "c-1", got.Creation.ContractID)
	assert.False(t, got.DocumentAttached)
	assert.Nil(t, got.Document)
	assert.NotEmpty(t, got.Warning)
}

// Не-PDF отклоняется до создания договора
func TestSubmissionService_RejectsInvalidDocumentBeforeCreation(t *testing.T) {
	tests := []struct {
		name    string
		file    models.UploadedFile
		wantErr error
	}{
		{
			name:    "plain text",
			file:    models.UploadedFile{Name: "sozlesme.pdf", Data: []byte("definitely not a pdf")},
			wantErr: validators.ErrUnsupportedFileType,
		},
		{
			name:    "empty",
			file:    models.UploadedFile{Name: "sozlesme.pdf"},
			wantErr: validators.ErrEmptyFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// репозиторий и трекер не должны вызываться
			f := newSubmissionFixture(ctrl)
			attachCalled := false
			f.documents.attachFn = func(context.Context, string, string, models.UploadedFile) (models.ContractDocument, error) {
				attachCalled = true
				return models.ContractDocument{}, nil
			}

			sub := submission()
			sub.Document = &tt.file

			_, err := f.svc.SubmitContract(context.Background(), sub)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.contracts.calls)
			assert.False(t, attachCalled)
		})
	}
}

func TestSubmissionService_DocumentTooLarge_RejectedBeforeCreation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubmissionFixture(ctrl)
	f.svc = NewSubmissionService(f.contracts, f.documents, f.repo, f.warnings, config.App{ImportMaxBytes: 8}, logger.Nop())

	sub := submission()
	file := testPDF()
	sub.Document = &file

	_, err := f.svc.SubmitContract(context.Background(), sub)

	assert.ErrorIs(t, err, validators.ErrFileTooLarge)
	assert.Zero(t, f.contracts.calls)
}

func TestSubmissionService_NoUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubmissionFixture(ctrl)
	sub := submission()
	sub.UserID = ""

	_, err := f.svc.SubmitContract(context.Background(), sub)
	assert.ErrorIs(t, err, ErrNoUserID)
}
