package usecase

import (
	"encoding/base64"
	"log"
	"strings"
	"time"

	"escolha_divina/internal/domain/entities"
	"escolha_divina/internal/domain/pix"
	"escolha_divina/internal/usecase/interfaces"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	demoTransactionIDSize = 20
	demoPixKeySize        = 36
	identifierSuffixSize  = 10

	DefaultDemoMerchantName = "ESCOLHA DIVINA LTDA"
	DefaultDemoMerchantCity = "SAO PAULO"
)

// DemoMerchant is the receiver printed in demo BR Codes.
type DemoMerchant struct {
	Name string
	City string
}

// DemoPixGenerator synthesizes non-settleable PIX payments locally.
//
// Generated payloads carry a well-formed BR Code and, when an encoder is
// available, a PNG QR code of it. Generation never fails: a QR encoding
// error only leaves the image empty.
type DemoPixGenerator struct {
	encoder  interfaces.IQRCodeEncoder
	merchant DemoMerchant
	now      func() time.Time
}

func NewDemoPixGenerator(encoder interfaces.IQRCodeEncoder, merchant DemoMerchant) *DemoPixGenerator {
	if strings.TrimSpace(merchant.Name) == "" {
		merchant.Name = DefaultDemoMerchantName
	}
	if strings.TrimSpace(merchant.City) == "" {
		merchant.City = DefaultDemoMerchantCity
	}
	return &DemoPixGenerator{encoder: encoder, merchant: merchant, now: time.Now}
}

// Generate builds a demo payment for req, tagged with the fallback reason.
func (g *DemoPixGenerator) Generate(req entities.PaymentRequest, reason entities.FallbackReason) entities.PixPayment {
	transactionID := entities.DemoTransactionPrefix + randomID(demoTransactionIDSize)

	copyPaste := pix.Payload{
		Key:          randomID(demoPixKeySize),
		Amount:       req.Amount,
		MerchantName: g.merchant.Name,
		MerchantCity: g.merchant.City,
	}.String()

	log.Printf("[pix][demo] generated transaction_id=%s reason=%s amount=%s", transactionID, reason, req.Amount.StringFixed(2))

	return entities.PixPayment{
		TransactionID: transactionID,
		Status:        entities.PaymentStatusPending,
		Order: entities.PixOrder{
			ID:     transactionID,
			Amount: req.Amount,
		},
		Pix: entities.PixCode{
			QRCode:    g.encodeQRCode(copyPaste),
			CopyPaste: copyPaste,
			ExpiresAt: g.now().UTC().Add(entities.DefaultPixExpiration),
		},
		Provenance:     entities.ProvenanceDemo,
		FallbackReason: reason,
	}
}

func (g *DemoPixGenerator) encodeQRCode(content string) string {
	if g.encoder == nil {
		log.Printf("[pix][demo] qr encoder not configured; returning empty image")
		return ""
	}
	png, err := g.encoder.EncodePNG(content)
	if err != nil {
		log.Printf("[pix][demo] qr encoding failed; returning empty image err=%v", err)
		return ""
	}
	return base64.StdEncoding.EncodeToString(png)
}

// randomID returns a URL-safe random id, falling back to uuid entropy if the
// nanoid generator fails.
func randomID(size int) string {
	id, err := gonanoid.New(size)
	if err == nil {
		return id
	}
	log.Printf("[pix][demo] nanoid failed; using uuid entropy err=%v", err)
	raw := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	if size > len(raw) {
		size = len(raw)
	}
	return raw[:size]
}
