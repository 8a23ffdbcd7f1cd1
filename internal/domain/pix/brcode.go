// Package pix builds static PIX "BR Code" payloads (EMV-QRCPS TLV strings).
//
// Only the fields needed by a demo checkout are emitted; real payloads come
// from the gateway untouched.
package pix

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/sigurn/crc16"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// BRCodePrefix opens every PIX payload: format indicator followed by the
	// merchant account information tag.
	BRCodePrefix = "00020126"
	// GUI is the PIX domain identifier carried inside the merchant account.
	GUI = "br.gov.bcb.pix"

	maxFieldLen        = 99
	maxAmountLen       = 13
	maxKeyLen          = 77
	maxMerchantNameLen = 25
	maxMerchantCityLen = 15
	maxTxIDLen         = 25
	defaultTxID        = "***"
)

// Field IDs (EMV-QRCPS).
const (
	idPayloadFormat      = "00"
	idMerchantAccount    = "26"
	idMerchantAccountGUI = "00"
	idMerchantAccountKey = "01"
	idCategoryCode       = "52"
	idCurrency           = "53"
	idAmount             = "54"
	idCountryCode        = "58"
	idMerchantName       = "59"
	idMerchantCity       = "60"
	idAdditionalData     = "62"
	idAdditionalTxID     = "05"
	idCRC                = "63"
)

// Payload is a static PIX charge.
type Payload struct {
	Key          string
	Amount       decimal.Decimal
	MerchantName string
	MerchantCity string
	TxID         string
}

// String encodes the payload, CRC included.
func (p Payload) String() string {
	var b strings.Builder
	b.WriteString(tlv(idPayloadFormat, "01"))
	b.WriteString(tlv(idMerchantAccount,
		tlv(idMerchantAccountGUI, GUI)+tlv(idMerchantAccountKey, truncate(p.Key, maxKeyLen))))
	b.WriteString(tlv(idCategoryCode, "0000"))
	b.WriteString(tlv(idCurrency, "986"))
	// Amounts that do not fit the 13-char field are left open for the payer.
	if amount := p.Amount.StringFixed(2); p.Amount.IsPositive() && len(amount) <= maxAmountLen {
		b.WriteString(tlv(idAmount, amount))
	}
	b.WriteString(tlv(idCountryCode, "BR"))
	b.WriteString(tlv(idMerchantName, truncate(sanitize(p.MerchantName), maxMerchantNameLen)))
	b.WriteString(tlv(idMerchantCity, truncate(sanitize(p.MerchantCity), maxMerchantCityLen)))

	txID := truncate(strings.TrimSpace(p.TxID), maxTxIDLen)
	if txID == "" {
		txID = defaultTxID
	}
	b.WriteString(tlv(idAdditionalData, tlv(idAdditionalTxID, txID)))

	b.WriteString(idCRC + "04")
	b.WriteString(fmt.Sprintf("%04X", CRC16([]byte(b.String()))))
	return b.String()
}

// HasBRCodeSignature reports whether s looks like a PIX BR Code payload.
func HasBRCodeSignature(s string) bool {
	return strings.HasPrefix(s, BRCodePrefix) && strings.Contains(s, GUI)
}

var crcTable = crc16.MakeTable(crc16.CRC16_CCITT_FALSE)

// CRC16 computes CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF).
func CRC16(data []byte) uint16 {
	return crc16.Checksum(data, crcTable)
}

// tlv encodes one field. The length is two digits, so values are capped at 99 bytes.
func tlv(id, value string) string {
	value = truncate(value, maxFieldLen)
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// sanitize upper-cases and strips diacritics so every rune is a single byte.
func sanitize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, out)
	return strings.ToUpper(strings.TrimSpace(out))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
