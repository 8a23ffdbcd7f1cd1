package pix

import (
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCRC16(t *testing.T) {
	if got := CRC16([]byte("123456789")); got != 0x29B1 {
		t.Fatalf("expected 0x29B1, got %#04x", got)
	}
}

func TestPayload_String(t *testing.T) {
	p := Payload{
		Key:          "0123456789abcdef0123456789abcdef0123",
		Amount:       decimal.RequireFromString("29.90"),
		MerchantName: "Escolha Divina LTDA",
		MerchantCity: "São Paulo",
	}

	want := "00020126580014br.gov.bcb.pix01360123456789abcdef0123456789abcdef0123" +
		"520400005303986540529.90" +
		"5802BR5919ESCOLHA DIVINA LTDA6009SAO PAULO62070503***6304BD69"

	if got := p.String(); got != want {
		t.Fatalf("unexpected payload:\n got: %s\nwant: %s", got, want)
	}
}

func TestPayload_Signature(t *testing.T) {
	cases := []Payload{
		{Key: "k", Amount: decimal.NewFromInt(1)},
		{Key: strings.Repeat("x", 200), Amount: decimal.RequireFromString("1234.5"), MerchantName: strings.Repeat("n", 60), MerchantCity: strings.Repeat("c", 60), TxID: strings.Repeat("t", 60)},
		{Key: "chave", Amount: decimal.Zero},
	}
	for _, p := range cases {
		s := p.String()
		if !HasBRCodeSignature(s) {
			t.Fatalf("payload missing BR Code signature: %s", s)
		}
		if !strings.Contains(s, "6304") || len(s) < 4 {
			t.Fatalf("payload missing CRC: %s", s)
		}
	}
}

func TestPayload_AmountFormatting(t *testing.T) {
	s := Payload{Key: "k", Amount: decimal.RequireFromString("29.9")}.String()
	if !strings.Contains(s, "540529.90") {
		t.Fatalf("expected amount with two decimals, got %s", s)
	}

	noAmount := Payload{Key: "k"}.String()
	if strings.Contains(noAmount, "5303986"+"54") {
		t.Fatalf("expected amount field omitted, got %s", noAmount)
	}
}

func TestPayload_OversizedAmountKeepsStructure(t *testing.T) {
	s := Payload{Key: "k", Amount: decimal.New(1, 100), TxID: "pedido-1"}.String()

	ids := walkTLV(t, s)
	for _, id := range ids {
		if id == idAmount {
			t.Fatalf("oversized amount must be omitted, got %s", s)
		}
	}
	if ids[len(ids)-1] != idCRC {
		t.Fatalf("expected CRC as last field, got %v", ids)
	}
	if !HasBRCodeSignature(s) {
		t.Fatalf("payload missing BR Code signature: %s", s)
	}
}

func TestPayload_AmountAtFieldLimit(t *testing.T) {
	s := Payload{Key: "k", Amount: decimal.RequireFromString("9999999999.99")}.String()
	if !strings.Contains(s, "54139999999999.99") {
		t.Fatalf("expected 13-char amount kept, got %s", s)
	}
	walkTLV(t, s)

	s = Payload{Key: "k", Amount: decimal.RequireFromString("10000000000")}.String()
	if strings.Contains(s, "10000000000.00") {
		t.Fatalf("expected 14-char amount omitted, got %s", s)
	}
}

func TestTLV_CapsValueLength(t *testing.T) {
	got := tlv("26", strings.Repeat("a", 150))
	if got != "2699"+strings.Repeat("a", 99) {
		t.Fatalf("expected value capped at 99 bytes, got %q", got)
	}
}

// walkTLV parses the top-level fields of s and returns their ids in order.
func walkTLV(t *testing.T, s string) []string {
	t.Helper()
	var ids []string
	for i := 0; i < len(s); {
		if i+4 > len(s) {
			t.Fatalf("truncated field header at %d in %s", i, s)
		}
		n, err := strconv.Atoi(s[i+2 : i+4])
		if err != nil {
			t.Fatalf("invalid length at %d in %s", i, s)
		}
		ids = append(ids, s[i:i+2])
		i += 4 + n
		if i > len(s) {
			t.Fatalf("field %s overruns payload %s", ids[len(ids)-1], s)
		}
	}
	return ids
}

func TestPayload_TruncatesAndSanitizes(t *testing.T) {
	s := Payload{
		Key:          "k",
		Amount:       decimal.NewFromInt(10),
		MerchantName: "Unção Sagrada do Arcanjo Miguel Ltda",
		MerchantCity: "São José dos Campos",
		TxID:         "pedido-1",
	}.String()

	if !strings.Contains(s, "5925UNCAO SAGRADA DO ARCANJ") {
		t.Fatalf("expected sanitized merchant name, got %s", s)
	}
	if !strings.Contains(s, "6015SAO JOSE DOS CA") {
		t.Fatalf("expected sanitized merchant city, got %s", s)
	}
	if !strings.Contains(s, "62120508pedido-1") {
		t.Fatalf("expected txid in additional data, got %s", s)
	}
}

func TestHasBRCodeSignature(t *testing.T) {
	if HasBRCodeSignature("") {
		t.Fatalf("empty string should not match")
	}
	if HasBRCodeSignature("00020126xyz") {
		t.Fatalf("missing GUI should not match")
	}
	if HasBRCodeSignature("0002010102br.gov.bcb.pix") {
		t.Fatalf("wrong prefix should not match")
	}
	if !HasBRCodeSignature("00020126580014br.gov.bcb.pix") {
		t.Fatalf("expected signature match")
	}
}
