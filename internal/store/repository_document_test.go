package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

func newTestDocumentRepo(t *testing.T) (*documentRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	d, mock, db := newTestDB(t)
	return &documentRepository{db: d, ids: &seqIDs{}, logger: logger.NewLogger("test")}, mock, func() { db.Close() }
}

func TestDocumentRepository_SaveDocument(t *testing.T) {
	repo, mock, done := newTestDocumentRepo(t)
	defer done()

	uploaded := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	doc := models.ContractDocument{
		ContractID:  "c-1",
		UserID:      "user-1",
		Path:        "user-1/c-1/x.pdf",
		FileName:    "kira.pdf",
		ContentType: "application/pdf",
		Size:        1024,
		UploadedAt:  uploaded,
	}

	mock.ExpectExec("INSERT INTO contract_documents").
		WithArgs("id-1", "c-1", "user-1", "user-1/c-1/x.pdf", "kira.pdf", "application/pdf", int64(1024), uploaded).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := repo.SaveDocument(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, "id-1", saved.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_SaveDocument_Error(t *testing.T) {
	repo, mock, done := newTestDocumentRepo(t)
	defer done()

	mock.ExpectExec("INSERT INTO contract_documents").WillReturnError(errors.New("fk violation"))

	_, err := repo.SaveDocument(context.Background(), models.ContractDocument{ContractID: "c-1"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestDocumentRepository_GetDocument(t *testing.T) {
	repo, mock, done := newTestDocumentRepo(t)
	defer done()

	cols := []string{"id", "contract_id", "user_id", "path", "file_name", "content_type", "size", "uploaded_at"}

	mock.ExpectQuery("FROM contract_documents WHERE id = ").WithArgs("d-1", "user-1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("d-1", "c-1", "user-1", "p", "kira.pdf", "application/pdf", 10, time.Now()))
	doc, err := repo.GetDocument(context.Background(), "user-1", "d-1")
	require.NoError(t, err)
	assert.Equal(t, "kira.pdf", doc.FileName)

	mock.ExpectQuery("FROM contract_documents WHERE id = ").WillReturnRows(sqlmock.NewRows(cols))
	_, err = repo.GetDocument(context.Background(), "user-1", "d-2")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDocumentRepository_DeleteDocument(t *testing.T) {
	repo, mock, done := newTestDocumentRepo(t)
	defer done()

	mock.ExpectExec("DELETE FROM contract_documents").WithArgs("d-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteDocument(context.Background(), "user-1", "d-1"))

	mock.ExpectExec("DELETE FROM contract_documents").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteDocument(context.Background(), "user-1", "d-1"), ErrDocumentNotFound)
}

func TestPartyRepository_GetOwner(t *testing.T) {
	d, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewPartyRepository(d, logger.NewLogger("test"))

	mock.ExpectQuery("FROM owners WHERE id = ").WithArgs("o-1", "user-1").
		WillReturnRows(sqlmock.NewRows(ownerColumns).
			AddRow("o-1", "user-1", "Ahmet", "aa:bb", "hash", nil, "5321234567", nil, time.Now()))

	owner, err := repo.GetOwner(context.Background(), "user-1", "o-1")
	require.NoError(t, err)
	assert.Nil(t, owner.IBANEncrypted)
	assert.Nil(t, owner.Email)
	require.NotNil(t, owner.Phone)
	assert.Equal(t, "5321234567", *owner.Phone)

	mock.ExpectQuery("FROM owners WHERE id = ").WillReturnRows(sqlmock.NewRows(ownerColumns))
	_, err = repo.GetOwner(context.Background(), "user-1", "o-2")
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestPartyRepository_GetTenant(t *testing.T) {
	d, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewPartyRepository(d, logger.NewLogger("test"))

	mock.ExpectQuery("FROM tenants WHERE id = ").
		WillReturnRows(sqlmock.NewRows(tenantColumns).
			AddRow("t-1", "user-1", "Ayşe", "ee:ff", "hash", nil, "ayse@example.com", "Kadıköy", time.Now()))

	tenant, err := repo.GetTenant(context.Background(), "user-1", "t-1")
	require.NoError(t, err)
	require.NotNil(t, tenant.Address)
	assert.Equal(t, "Kadıköy", *tenant.Address)

	mock.ExpectQuery("FROM tenants WHERE id = ").WillReturnError(errors.New("boom"))
	_, err = repo.GetTenant(context.Background(), "user-1", "t-1")
	assert.ErrorIs(t, err, ErrScanningRow)
}
