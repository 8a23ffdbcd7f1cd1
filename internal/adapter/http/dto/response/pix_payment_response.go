package response

import (
	"encoding/json"
	"time"

	"escolha_divina/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ExpiresAtLayout is ISO-8601 in UTC with millisecond precision.
const ExpiresAtLayout = "2006-01-02T15:04:05.000Z07:00"

type PixOrderResponse struct {
	ID     string      `json:"id"`
	Amount json.Number `json:"amount" swaggertype:"number" example:"29.9"`
}

type PixCodeResponse struct {
	QRCode    string `json:"qrCode"`
	CopyPaste string `json:"copyPaste"`
	ExpiresAt string `json:"expiresAt" example:"2026-01-01T10:30:00.000Z"`
}

type PixPaymentResponse struct {
	TransactionID  string           `json:"transactionId"`
	Status         string           `json:"status"`
	Provenance     string           `json:"provenance" enums:"live,demo"`
	FallbackReason string           `json:"fallbackReason,omitempty"`
	Order          PixOrderResponse `json:"order"`
	Pix            PixCodeResponse  `json:"pix"`
}

func FromPixPayment(p entities.PixPayment) PixPaymentResponse {
	return PixPaymentResponse{
		TransactionID:  p.TransactionID,
		Status:         string(p.Status),
		Provenance:     string(p.Provenance),
		FallbackReason: string(p.FallbackReason),
		Order: PixOrderResponse{
			ID:     p.Order.ID,
			Amount: amount(p.Order.Amount),
		},
		Pix: PixCodeResponse{
			QRCode:    p.Pix.QRCode,
			CopyPaste: p.Pix.CopyPaste,
			ExpiresAt: formatTime(p.Pix.ExpiresAt),
		},
	}
}

type PaymentStatusResponse struct {
	Status string `json:"status"`
	Paid   bool   `json:"paid"`
}

func FromPaymentStatusResult(r entities.PaymentStatusResult) PaymentStatusResponse {
	return PaymentStatusResponse{Status: string(r.Status), Paid: r.Paid}
}

type CheckoutAttemptResponse struct {
	TransactionID  string      `json:"transactionId"`
	OrderID        string      `json:"orderId"`
	ProductID      string      `json:"productId"`
	Amount         json.Number `json:"amount" swaggertype:"number"`
	Status         string      `json:"status"`
	Provenance     string      `json:"provenance"`
	FallbackReason string      `json:"fallbackReason,omitempty"`
	ExpiresAt      string      `json:"expiresAt,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func FromCheckoutAttempt(a entities.CheckoutAttempt) CheckoutAttemptResponse {
	return CheckoutAttemptResponse{
		TransactionID:  a.TransactionID,
		OrderID:        a.OrderID,
		ProductID:      a.ProductID,
		Amount:         amount(a.Amount),
		Status:         string(a.Status),
		Provenance:     string(a.Provenance),
		FallbackReason: string(a.FallbackReason),
		ExpiresAt:      formatTime(a.ExpiresAt),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// amount keeps the exact decimal value as a JSON number.
func amount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(ExpiresAtLayout)
}
