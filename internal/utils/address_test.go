package utils

import (
	"testing"

	"github.com/MKhiriev/go-emlak-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modaAddress() models.AddressComponents {
	return models.AddressComponents{
		Mahalle:    "Moda Mahallesi",
		CaddeSokak: "Atatürk Caddesi",
		BinaNo:     "123",
		DaireNo:    "5",
		Ilce:       "Kadıköy",
		Il:         "İstanbul",
	}
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t, "moda mah atatürk cad 123 5 kadiköy istanbul", NormalizeAddress(modaAddress()))
}

func TestNormalizeAddress_SuffixAndCaseEquivalence(t *testing.T) {
	full := modaAddress()
	abbreviated := models.AddressComponents{
		Mahalle:    "MODA MAH.",
		CaddeSokak: "atatürk  cad",
		BinaNo:     " 123 ",
		DaireNo:    "5",
		Ilce:       "KADIKÖY",
		Il:         "istanbul",
	}

	assert.Equal(t, NormalizeAddress(full), NormalizeAddress(abbreviated))
	assert.True(t, AddressesMatch(full, abbreviated))
}

// ASCII I в турецкой локали даёт ı, ключ не должен зависеть от раскладки
func TestNormalizeAddress_DottedAndDotlessIMatch(t *testing.T) {
	base := modaAddress()
	want := NormalizeAddress(base)

	for _, il := range []string{"ISTANBUL", "Istanbul", "İstanbul", "istanbul", "İSTANBUL"} {
		t.Run(il, func(t *testing.T) {
			c := base
			c.Il = il
			assert.Equal(t, want, NormalizeAddress(c))
			assert.True(t, AddressesMatch(base, c))
		})
	}

	c := base
	c.Ilce = "Kadiköy"
	assert.Equal(t, want, NormalizeAddress(c))
	c.Ilce = "KADIKÖY"
	assert.Equal(t, want, NormalizeAddress(c))
}

func TestNormalizeAddress_StreetAndBoulevardSuffixes(t *testing.T) {
	tests := []struct {
		street string
		want   string
	}{
		{"Bağdat Sokak", "bağdat sok"},
		{"Bağdat Sokağı", "bağdat sok"},
		{"Bağdat Sk.", "bağdat sok"},
		{"Vatan Bulvarı", "vatan blv"},
		{"Vatan Bulvar", "vatan blv"},
		{"Vatan Blv.", "vatan blv"},
		{"BAĞDAT SOKAGI", "bağdat sok"},
		{"VATAN BULVARI", "vatan blv"},
	}

	for _, tt := range tests {
		t.Run(tt.street, func(t *testing.T) {
			got := NormalizeAddress(models.AddressComponents{CaddeSokak: tt.street})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeAddress_SkipsEmptyComponents(t *testing.T) {
	c := models.AddressComponents{
		Mahalle:    "Moda Mahallesi",
		CaddeSokak: "Atatürk Caddesi",
		BinaNo:     "123",
		Il:         "İstanbul",
	}

	assert.Equal(t, "moda mah atatürk cad 123 istanbul", NormalizeAddress(c))
}

func TestGenerateFullAddress(t *testing.T) {
	c := modaAddress()
	assert.Equal(t, "Moda Mahallesi Atatürk Caddesi No:123 D:5, Kadıköy/İstanbul", GenerateFullAddress(c))

	c.DaireNo = ""
	assert.Equal(t, "Moda Mahallesi Atatürk Caddesi No:123, Kadıköy/İstanbul", GenerateFullAddress(c))
}

func TestParseAddress_RoundTripRecoversLocationAndNumbers(t *testing.T) {
	got := ParseAddress(GenerateFullAddress(modaAddress()))

	require.NotNil(t, got.Ilce)
	require.NotNil(t, got.Il)
	require.NotNil(t, got.BinaNo)
	require.NotNil(t, got.DaireNo)
	assert.Equal(t, "Kadıköy", *got.Ilce)
	assert.Equal(t, "İstanbul", *got.Il)
	assert.Equal(t, "123", *got.BinaNo)
	assert.Equal(t, "5", *got.DaireNo)
}

func TestParseAddress_UnrecognizedStreetPartStaysNil(t *testing.T) {
	c := models.AddressComponents{
		Mahalle:    "Moda",
		CaddeSokak: "Atatürk Caddesi",
		BinaNo:     "7",
		Ilce:       "Kadıköy",
		Il:         "İstanbul",
	}

	got := ParseAddress(GenerateFullAddress(c))

	assert.Nil(t, got.Mahalle)
	assert.Nil(t, got.CaddeSokak)
	assert.Nil(t, got.DaireNo)
	require.NotNil(t, got.BinaNo)
	assert.Equal(t, "7", *got.BinaNo)
}

func TestParseAddress_SplitsNeighborhoodOnSuffix(t *testing.T) {
	got := ParseAddress("Moda Mahallesi Atatürk Caddesi No:123 D:5, Kadıköy/İstanbul")

	require.NotNil(t, got.Mahalle)
	require.NotNil(t, got.CaddeSokak)
	assert.Equal(t, "Moda Mahallesi", *got.Mahalle)
	assert.Equal(t, "Atatürk Caddesi", *got.CaddeSokak)
}

func TestParseAddress_MissingDelimiters(t *testing.T) {
	assert.True(t, ParseAddress("Moda Mahallesi No:1 Kadıköy/İstanbul").IsEmpty(), "no comma")
	assert.True(t, ParseAddress("Moda Mahallesi No:1, Kadıköy İstanbul").IsEmpty(), "no slash")
	assert.True(t, ParseAddress("").IsEmpty())
}

func TestIsValidAddress(t *testing.T) {
	c := modaAddress()
	assert.True(t, IsValidAddress(c))

	c.DaireNo = ""
	assert.True(t, IsValidAddress(c), "unit number is optional")

	for _, blank := range []func(*models.AddressComponents){
		func(a *models.AddressComponents) { a.Mahalle = "" },
		func(a *models.AddressComponents) { a.CaddeSokak = " " },
		func(a *models.AddressComponents) { a.BinaNo = "" },
		func(a *models.AddressComponents) { a.Ilce = "" },
		func(a *models.AddressComponents) { a.Il = "" },
	} {
		c := modaAddress()
		blank(&c)
		assert.False(t, IsValidAddress(c))
	}
}
