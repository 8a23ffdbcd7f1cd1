package interfaces

import (
	"context"

	"escolha_divina/internal/domain/entities"
)

//go:generate mockgen -source=checkout_attempt_repository_interface.go -destination=mocks/checkout_attempt_repository_interface_mock.go -package=mock_interfaces

// ICheckoutAttemptRepository abstracts DynamoDB persistence for CheckoutAttempt.
//
// Lookups of missing items return a zero CheckoutAttempt and a nil error.

type ICheckoutAttemptRepository interface {
	Create(ctx context.Context, a entities.CheckoutAttempt) (entities.CheckoutAttempt, error)
	GetByTransactionID(ctx context.Context, transactionID string) (entities.CheckoutAttempt, error)
	UpdateStatus(ctx context.Context, transactionID string, status entities.PaymentStatus) (entities.CheckoutAttempt, error)
}
