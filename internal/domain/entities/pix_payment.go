package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPixExpiration is the validity window applied to a PIX charge when the
// gateway does not report one.
const DefaultPixExpiration = 30 * time.Minute

// DemoTransactionPrefix marks transactions synthesized locally.
const DemoTransactionPrefix = "demo_"

// PaymentStatus is the settlement state reported for a PIX charge.
//
// Gateways may report other values; they are passed through untouched.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusError    PaymentStatus = "error"
)

// IsPaid reports whether the status means the charge was settled.
func (s PaymentStatus) IsPaid() bool {
	return s == PaymentStatusPaid || s == PaymentStatusApproved
}

// Provenance tells whether a PixPayment came from the real gateway or was
// synthesized locally.
type Provenance string

const (
	ProvenanceLive Provenance = "live"
	ProvenanceDemo Provenance = "demo"
)

// FallbackReason explains why a demo payment was produced instead of a live one.
type FallbackReason string

const (
	FallbackNone               FallbackReason = ""
	FallbackCredentialsMissing FallbackReason = "credentials_missing"
	FallbackInvalidRequest     FallbackReason = "invalid_request"
	FallbackInvalidDocument    FallbackReason = "invalid_document"
	FallbackGatewayError       FallbackReason = "gateway_error"
)

// IsOperational reports whether the fallback points at an infrastructure
// problem (as opposed to configuration or bad user input).
func (r FallbackReason) IsOperational() bool {
	return r == FallbackGatewayError
}

// Client is the payer of a PIX charge. Document holds the CPF.
type Client struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
}

// Product is the single item sold by a checkout.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Total returns price × quantity.
func (p Product) Total() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// PaymentRequest is the input of a PIX charge creation.
type PaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Client      Client          `json:"client"`
	Product     Product         `json:"product"`
	CallbackURL string          `json:"callback_url,omitempty"`
}

type PixOrder struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

// PixCode carries the scannable QR image (base64 PNG) and the BR Code
// copy-paste payload.
type PixCode struct {
	QRCode    string    `json:"qr_code"`
	CopyPaste string    `json:"copy_paste"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PixPayment is one payment attempt produced by a checkout.
//
// It is never persisted by the payment client; the status transition
// pending -> paid is only observed through the gateway.
type PixPayment struct {
	TransactionID  string         `json:"transaction_id"`
	Status         PaymentStatus  `json:"status"`
	Order          PixOrder       `json:"order"`
	Pix            PixCode        `json:"pix"`
	Provenance     Provenance     `json:"provenance"`
	FallbackReason FallbackReason `json:"fallback_reason,omitempty"`
}

// IsDemo reports whether the payment was synthesized locally.
func (p PixPayment) IsDemo() bool {
	return p.Provenance == ProvenanceDemo
}

// PaymentStatusResult is the answer of a status poll.
type PaymentStatusResult struct {
	Status PaymentStatus `json:"status"`
	Paid   bool          `json:"paid"`
}

// NewPaymentStatusResult derives Paid from the status.
func NewPaymentStatusResult(status PaymentStatus) PaymentStatusResult {
	return PaymentStatusResult{Status: status, Paid: status.IsPaid()}
}
