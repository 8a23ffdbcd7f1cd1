package interfaces

import (
	"context"

	"escolha_divina/internal/domain/entities"
)

//go:generate mockgen -source=pix_gateway_interface.go -destination=mocks/pix_gateway_interface_mock.go -package=mock_interfaces

// IPixGateway abstracts external PIX providers (e.g. LX Pay, Mercado Pago).
//
// Implementations return errors freely; the use case decides how to degrade.
// CreatePixCharge receives a request whose document and phone are already
// digits-only.
type IPixGateway interface {
	CreatePixCharge(ctx context.Context, identifier string, req entities.PaymentRequest) (entities.PixPayment, error)
	GetTransactionStatus(ctx context.Context, transactionID string) (entities.PaymentStatus, error)
}

// IQRCodeEncoder renders content as a PNG QR code image.
type IQRCodeEncoder interface {
	EncodePNG(content string) ([]byte, error)
}
