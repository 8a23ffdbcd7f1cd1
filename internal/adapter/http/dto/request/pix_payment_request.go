package request

import (
	"strings"

	"escolha_divina/internal/domain/entities"
)

// PixPaymentCreateRequest is the checkout form submitted by the buyer.
//
// Amount and product are never taken from the client; they come from the
// configured offer.
type PixPaymentCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Document string `json:"document" binding:"required,min=11,max=14"`
}

func (r PixPaymentCreateRequest) ToPaymentRequest(offer entities.Product, callbackURL string) entities.PaymentRequest {
	return entities.PaymentRequest{
		Amount: offer.Total(),
		Client: entities.Client{
			Name:     strings.TrimSpace(r.Name),
			Email:    strings.TrimSpace(r.Email),
			Phone:    strings.TrimSpace(r.Phone),
			Document: strings.TrimSpace(r.Document),
		},
		Product:     offer,
		CallbackURL: callbackURL,
	}
}

// CheckStatusRequest is the query of the RPC status alias.
type CheckStatusRequest struct {
	TransactionID string `form:"transactionId" json:"transactionId"`
}
