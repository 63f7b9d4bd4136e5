package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-emlak-keeper/models"
)

const (
	tableOwners           = "owners"
	tableTenants          = "tenants"
	tableProperties       = "properties"
	tableContracts        = "contracts"
	tableContractDetails  = "contract_details"
	tableContractDocument = "contract_documents"
)

var (
	ownerColumns    = []string{"id", "user_id", "name", "tc_encrypted", "tc_hash", "iban_encrypted", "phone", "email", "created_at"}
	tenantColumns   = []string{"id", "user_id", "name", "tc_encrypted", "tc_hash", "phone", "email", "address", "created_at"}
	contractColumns = []string{"id", "user_id", "owner_id", "tenant_id", "property_id", "start_date", "end_date", "rent_amount", "deposit", "currency", "status", "created_at"}
	documentColumns = []string{"id", "contract_id", "user_id", "path", "file_name", "content_type", "size", "uploaded_at"}
)

func (db *DB) buildActiveContractByAddressQuery(userID, normalizedAddress string) (string, []any, error) {
	return db.builder.
		Select("c.id", "t.name", "c.start_date", "c.end_date", "c.rent_amount", "c.currency").
		From(tableContracts + " c").
		Join(tableProperties + " p ON p.id = c.property_id").
		Join(tableTenants + " t ON t.id = c.tenant_id").
		Where(sq.Eq{"c.user_id": userID}).
		Where(sq.Eq{"p.normalized_address": normalizedAddress}).
		Where(sq.Eq{"c.status": string(models.ContractStatusActive)}).
		OrderBy("c.created_at DESC").
		Limit(1).
		ToSql()
}

// buildPartyByTCHashQuery looks up an owner or tenant id and name by TC hash.
func (db *DB) buildPartyByTCHashQuery(table, userID, tcHash string) (string, []any, error) {
	return db.builder.
		Select("id", "name").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"tc_hash": tcHash}).
		ToSql()
}

func (db *DB) buildInsertOwnerQuery(id, userID string, owner models.OwnerPayload) (string, []any, error) {
	return db.builder.
		Insert(tableOwners).
		Columns("id", "user_id", "name", "tc_encrypted", "tc_hash", "iban_encrypted", "phone", "email").
		Values(id, userID, owner.Name, owner.TCEncrypted, owner.TCHash, owner.IBANEncrypted, owner.Phone, owner.Email).
		ToSql()
}

func (db *DB) buildInsertTenantQuery(id, userID string, tenant models.TenantPayload) (string, []any, error) {
	return db.builder.
		Insert(tableTenants).
		Columns("id", "user_id", "name", "tc_encrypted", "tc_hash", "phone", "email", "address").
		Values(id, userID, tenant.Name, tenant.TCEncrypted, tenant.TCHash, tenant.Phone, tenant.Email, tenant.Address).
		ToSql()
}

func (db *DB) buildPropertyByAddressQuery(userID, normalizedAddress string) (string, []any, error) {
	return db.builder.
		Select("id", "full_address").
		From(tableProperties).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"normalized_address": normalizedAddress}).
		ToSql()
}

func (db *DB) buildInsertPropertyQuery(id, userID, ownerID string, property models.PropertyPayload) (string, []any, error) {
	var daireNo *string
	if property.DaireNo != "" {
		daireNo = &property.DaireNo
	}

	return db.builder.
		Insert(tableProperties).
		Columns("id", "user_id", "owner_id", "mahalle", "cadde_sokak", "bina_no", "daire_no", "ilce", "il",
			"full_address", "normalized_address", "type", "use_purpose").
		Values(id, userID, ownerID, property.Mahalle, property.CaddeSokak, property.BinaNo, daireNo, property.Ilce, property.Il,
			property.FullAddress, property.NormalizedAddress, property.Type, property.UsePurpose).
		ToSql()
}

func (db *DB) buildInsertContractQuery(c models.Contract) (string, []any, error) {
	return db.builder.
		Insert(tableContracts).
		Columns("id", "user_id", "owner_id", "tenant_id", "property_id", "start_date", "end_date", "rent_amount", "deposit", "currency", "status").
		Values(c.ID, c.UserID, c.OwnerID, c.TenantID, c.PropertyID, c.StartDate, c.EndDate, c.RentAmount, c.Deposit, c.Currency, string(c.Status)).
		ToSql()
}

func (db *DB) buildInsertContractDetailsQuery(d models.ContractDetails) (string, []any, error) {
	return db.builder.
		Insert(tableContractDetails).
		Columns("contract_id", "payment_day", "payment_method", "annual_rent", "duration_months", "use_purpose",
			"special_conditions", "owner_tc", "owner_iban", "tenant_tc").
		Values(d.ContractID, d.PaymentDay, d.PaymentMethod, d.AnnualRent, d.DurationMonths, d.UsePurpose,
			d.SpecialConditions, d.OwnerTC, d.OwnerIBAN, d.TenantTC).
		ToSql()
}

func (db *DB) buildGetContractQuery(userID, contractID string) (string, []any, error) {
	return db.builder.
		Select(contractColumns...).
		From(tableContracts).
		Where(sq.Eq{"id": contractID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) buildInsertDocumentQuery(doc models.ContractDocument) (string, []any, error) {
	return db.builder.
		Insert(tableContractDocument).
		Columns(documentColumns...).
		Values(doc.ID, doc.ContractID, doc.UserID, doc.Path, doc.FileName, doc.ContentType, doc.Size, doc.UploadedAt).
		ToSql()
}

func (db *DB) buildGetDocumentQuery(userID, documentID string) (string, []any, error) {
	return db.builder.
		Select(documentColumns...).
		From(tableContractDocument).
		Where(sq.Eq{"id": documentID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) buildDeleteDocumentQuery(userID, documentID string) (string, []any, error) {
	return db.builder.
		Delete(tableContractDocument).
		Where(sq.Eq{"id": documentID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) buildGetPartyQuery(table string, columns []string, userID, id string) (string, []any, error) {
	return db.builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
