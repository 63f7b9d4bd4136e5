package validators

// Field name constants used to specify which fields should be validated.
// They double as the keys of FieldErrors and match the JSON names of
// models.ContractForm, so clients can attach messages to inputs directly.
const (
	FieldOwnerName  = "owner_name"
	FieldOwnerTC    = "owner_tc"
	FieldOwnerIBAN  = "owner_iban"
	FieldOwnerPhone = "owner_phone"
	FieldOwnerEmail = "owner_email"

	FieldTenantName  = "tenant_name"
	FieldTenantTC    = "tenant_tc"
	FieldTenantPhone = "tenant_phone"
	FieldTenantEmail = "tenant_email"

	// Address fields carry the "address." prefix of the nested form object.
	FieldMahalle    = "address.mahalle"
	FieldCaddeSokak = "address.cadde_sokak"
	FieldBinaNo     = "address.bina_no"
	FieldIlce       = "address.ilce"
	FieldIl         = "address.il"

	FieldPropertyType = "property_type"
	FieldStartDate    = "start_date"
	FieldEndDate      = "end_date"
	FieldRentAmount   = "rent_amount"
	FieldDeposit      = "deposit"
	FieldPaymentDay   = "payment_day"

	FieldFile = "file"
)

// contractFormFields is the default field set checked for a contract form.
var contractFormFields = []string{
	FieldOwnerName, FieldOwnerTC, FieldOwnerIBAN, FieldOwnerPhone, FieldOwnerEmail,
	FieldTenantName, FieldTenantTC, FieldTenantPhone, FieldTenantEmail,
	FieldMahalle, FieldCaddeSokak, FieldBinaNo, FieldIlce, FieldIl,
	FieldPropertyType, FieldStartDate, FieldEndDate, FieldRentAmount, FieldDeposit, FieldPaymentDay,
}

// AddressFields are the address components required for a complete address.
var AddressFields = []string{FieldMahalle, FieldCaddeSokak, FieldBinaNo, FieldIlce, FieldIl}
