package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutAttempt is the audit record of one PIX checkout.
//
// Storage model (DynamoDB):
//   - PK: transaction_id
//
// Audit is optional and best-effort: the checkout never depends on it.
// Payer documents are not stored.

type CheckoutAttempt struct {
	TransactionID  string          `json:"transaction_id"`
	OrderID        string          `json:"order_id"`
	ProductID      string          `json:"product_id"`
	Amount         decimal.Decimal `json:"amount"`
	Status         PaymentStatus   `json:"status"`
	Provenance     Provenance      `json:"provenance"`
	FallbackReason FallbackReason  `json:"fallback_reason,omitempty"`
	ExpiresAt      time.Time       `json:"expires_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewCheckoutAttempt builds the audit record for a freshly created payment.
func NewCheckoutAttempt(req PaymentRequest, p PixPayment, now time.Time) CheckoutAttempt {
	return CheckoutAttempt{
		TransactionID:  p.TransactionID,
		OrderID:        p.Order.ID,
		ProductID:      req.Product.ID,
		Amount:         p.Order.Amount,
		Status:         p.Status,
		Provenance:     p.Provenance,
		FallbackReason: p.FallbackReason,
		ExpiresAt:      p.Pix.ExpiresAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
