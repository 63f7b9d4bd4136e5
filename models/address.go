package models

// AddressComponents is a Turkish postal address split into the parts the CRM
// stores individually. DaireNo is the only optional component.
type AddressComponents struct {
	Mahalle    string `json:"mahalle"`
	CaddeSokak string `json:"cadde_sokak"`
	BinaNo     string `json:"bina_no"`
	DaireNo    string `json:"daire_no,omitempty"`
	Ilce       string `json:"ilce"`
	Il         string `json:"il"`
}

// PartialAddress is the best-effort result of parsing a display address back
// into components. Nil fields were not recognized.
type PartialAddress struct {
	Mahalle    *string `json:"mahalle,omitempty"`
	CaddeSokak *string `json:"cadde_sokak,omitempty"`
	BinaNo     *string `json:"bina_no,omitempty"`
	DaireNo    *string `json:"daire_no,omitempty"`
	Ilce       *string `json:"ilce,omitempty"`
	Il         *string `json:"il,omitempty"`
}

// IsEmpty reports whether no component was recognized.
func (p PartialAddress) IsEmpty() bool {
	return p.Mahalle == nil && p.CaddeSokak == nil && p.BinaNo == nil &&
		p.DaireNo == nil && p.Ilce == nil && p.Il == nil
}
