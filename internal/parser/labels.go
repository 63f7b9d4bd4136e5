package parser

import (
	"regexp"
	"strings"
)

type fieldKind int

const (
	kindDelimiter fieldKind = iota
	kindOwnerName
	kindOwnerHeader
	kindTenantName
	kindTenantHeader
	kindPropertyHeader
	kindPartyName
	kindTC
	kindPhone
	kindEmail
	kindIBAN
	kindAddress
	kindPropertyAddress
	kindMahalle
	kindCaddeSokak
	kindBinaNo
	kindDaireNo
	kindIlce
	kindIl
	kindUsePurpose
	kindRent
	kindDeposit
	kindStartDate
	kindEndDate
	kindPaymentDay
)

// label matches one recognizable marker in contract text. Group 1 spans the
// marker itself; inline labels carry their value in group 2.
type label struct {
	kind   fieldKind
	re     *regexp.Regexp
	inline bool
}

// labelPrefix keeps labels from matching inside longer words.
const labelPrefix = `(?:^|[^\p{L}\p{N}])`

// turkishFold makes the dotted and dotless i interchangeable in a pattern:
// Go's case folding treats İ and ı as unrelated to i and I.
func turkishFold(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case 'i', 'ı', 'İ', 'I':
			b.WriteString(`[iıİI]`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func newLabel(kind fieldKind, pattern string) label {
	return label{kind: kind, re: regexp.MustCompile(`(?i)` + labelPrefix + `(` + turkishFold(pattern) + `)`)}
}

func newInline(kind fieldKind, pattern, value string) label {
	return label{
		kind:   kind,
		re:     regexp.MustCompile(`(?i)` + labelPrefix + `(` + turkishFold(pattern) + `(` + value + `))`),
		inline: true,
	}
}

const partyNameSuffix = `(?:\s+(?:Adı\s+Soyadı|Ad\s+Soyad|Adı|Ünvanı))?\s*:`

var labels = []label{
	newLabel(kindOwnerName, `Kiraya\s+Veren(?:in)?`+partyNameSuffix),
	newLabel(kindOwnerName, `(?:Mal|Ev|Mülk)\s+Sahibi(?:nin)?`+partyNameSuffix),
	newLabel(kindOwnerHeader, `Kiraya\s+Veren(?:e)?\s+(?:Ait\s+)?Bilgiler(?:i)?`),
	newLabel(kindTenantName, `Kiracı(?:nın)?`+partyNameSuffix),
	newLabel(kindTenantHeader, `Kiracı(?:ya)?\s+(?:Ait\s+)?Bilgiler(?:i)?`),
	newLabel(kindPropertyHeader, `Kiralanan\s+(?:Yer|Taşınmaz|Mülk|Gayrimenkul)(?:e)?\s+(?:Ait\s+)?Bilgiler(?:i)?`),
	newLabel(kindPartyName, `Adı\s*Soyadı\s*:|Ad\s*Soyad\s*:`),

	newLabel(kindTC, `(?:T\.?\s?C\.?\s*)?Kimlik\s*(?:No|Numarası)\s*:?|T\.?\s?C\.?\s*(?:No\s*)?:`),
	newLabel(kindPhone, `(?:Cep\s+)?(?:Telefon(?:u)?|Tel|GSM)(?:\s*No)?\s*:`),
	newInline(kindEmail, ``, `[\w.+-]+@[\w-]+(?:\.[\w-]+)+`),
	newInline(kindIBAN, ``, `TR\s?\d{2}(?:\s?\d{4}){5}\s?\d{2}`),

	newLabel(kindPropertyAddress, `Kiralanan\s+(?:Yerin|Taşınmazın|Mülkün|Gayrimenkulün)\s+(?:Açık\s+)?Adresi\s*:|(?:Mülk|Taşınmaz)\s+Adresi\s*:`),
	newLabel(kindAddress, `(?:İkametgah\s+|Tebligat\s+)?Adres(?:i)?\s*:`),
	newLabel(kindMahalle, `Mahalle(?:si)?\s*:`),
	newLabel(kindCaddeSokak, `Caddesi\s*/\s*Sokağı\s*:|Cadde\s*/\s*Sokak\s*:|Cadde(?:si)?\s*:|Sokağı\s*:|Sokak\s*:`),
	newLabel(kindBinaNo, `(?:Bina|Dış\s+Kapı|Kapı)\s+No\s*:`),
	newLabel(kindDaireNo, `(?:Daire|İç\s+Kapı)\s+No\s*:`),
	newLabel(kindIlce, `İlçe(?:si)?\s*:`),
	newLabel(kindIl, `İl(?:i)?\s*:`),
	newLabel(kindUsePurpose, `(?:Kiralanan\s+Yerin\s+)?Kullanım\s+(?:Amacı|Şekli)\s*:|(?:Kiralananın\s+)?Cinsi\s*:`),

	newLabel(kindDelimiter, `Yıllık\s+Kira\s+(?:Bedeli|Tutarı)(?:\s*\([^)]*\))?\s*:`),
	newLabel(kindRent, `(?:Aylık\s+)?Kira\s+(?:Bedeli|Tutarı)(?:\s*\([^)]*\))?\s*:`),
	newLabel(kindDeposit, `Depozito(?:\s+(?:Bedeli|Tutarı))?\s*:|Güvence\s+Bedeli\s*:|Teminat(?:\s+(?:Bedeli|Tutarı))?\s*:`),
	newLabel(kindStartDate, `(?:Kira\s+)?(?:Sözleşme\s+)?Başlangıç(?:\s+Tarihi)?\s*:|Kiranın\s+Başlangıcı\s*:`),
	newLabel(kindEndDate, `(?:Kira\s+)?(?:Sözleşme\s+)?Bitiş(?:\s+Tarihi)?\s*:|Kiranın\s+Sonu\s*:`),
	newLabel(kindPaymentDay, `Ödeme\s+Günü\s*:`),
	newInline(kindPaymentDay, `her\s+ayın\s+`, `\d{1,2}`),

	newLabel(kindDelimiter, `IBAN(?:\s+No)?\s*:|E-?\s?posta(?:\s+Adresi)?\s*:|Mail\s*:|Sözleşme\s+(?:No|Tarihi)\s*:|Süresi\s*:`),
}

var (
	tcValuePattern     = regexp.MustCompile(`\d{11}`)
	phoneValuePattern  = regexp.MustCompile(`\+?\d[\d\s()-]{8,}\d`)
	amountValuePattern = regexp.MustCompile(`\d[\d.,]*\d|\d`)
	dateValuePattern   = regexp.MustCompile(`\d{1,2}[./]\d{1,2}[./]\d{4}`)
	dayValuePattern    = regexp.MustCompile(`\d{1,2}`)
	nameValuePattern   = regexp.MustCompile(`^[\p{L}][\p{L}\s.'-]*`)
	tokenValuePattern  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N}/-]*`)
	locationPattern    = regexp.MustCompile(`\s([\p{L}]+)\s*/\s*([\p{L}]+)\s*\.?$`)
)
