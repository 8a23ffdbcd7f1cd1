package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"escolha_divina/internal/domain/document"
	"escolha_divina/internal/domain/entities"
	"escolha_divina/internal/domain/pix"
	"escolha_divina/internal/usecase/interfaces"
)

//go:generate mockgen -source=pix_payment_usecase.go -destination=../adapter/http/handlers/mocks/pix_payment_usecase_mock.go -package=mocks

var (
	ErrInvalidTransactionID    = errors.New("invalid transaction id")
	ErrCheckoutAttemptNotFound = errors.New("checkout attempt not found")
	ErrAttemptAuditDisabled    = errors.New("checkout attempt audit disabled")
	ErrMalformedGatewayPayment = errors.New("malformed gateway payment")
)

// IPixPaymentUseCase is the checkout's payment client.
//
// CreatePix and CheckStatus never fail: every error path resolves to a demo
// payment or an "error" status so the checkout page always renders.
type IPixPaymentUseCase interface {
	CreatePix(ctx context.Context, req entities.PaymentRequest) entities.PixPayment
	CheckStatus(ctx context.Context, transactionID string) entities.PaymentStatusResult
	GetAttempt(ctx context.Context, transactionID string) (entities.CheckoutAttempt, error)
}

// GatewayMode selects between the live gateway and local demo payments.
// Build it with Live or Demo.
type GatewayMode struct {
	gateway interfaces.IPixGateway
}

// Live routes charges through gateway. A nil gateway behaves like Demo.
func Live(gateway interfaces.IPixGateway) GatewayMode {
	return GatewayMode{gateway: gateway}
}

// Demo never performs network I/O.
func Demo() GatewayMode {
	return GatewayMode{}
}

func (m GatewayMode) IsLive() bool {
	return m.gateway != nil
}

func (m GatewayMode) String() string {
	if m.IsLive() {
		return "live"
	}
	return "demo"
}

type PixPaymentUseCase struct {
	mode     GatewayMode
	demo     *DemoPixGenerator
	attempts interfaces.ICheckoutAttemptRepository
	now      func() time.Time
}

var _ IPixPaymentUseCase = (*PixPaymentUseCase)(nil)

// NewPixPaymentUseCase wires the payment client. attempts may be nil to
// disable auditing.
func NewPixPaymentUseCase(mode GatewayMode, demo *DemoPixGenerator, attempts interfaces.ICheckoutAttemptRepository) *PixPaymentUseCase {
	if demo == nil {
		demo = NewDemoPixGenerator(nil, DemoMerchant{})
	}
	return &PixPaymentUseCase{mode: mode, demo: demo, attempts: attempts, now: time.Now}
}

func (u *PixPaymentUseCase) CreatePix(ctx context.Context, req entities.PaymentRequest) entities.PixPayment {
	log.Printf("[pix][usecase] create start mode=%s product_id=%s amount=%s", u.mode, req.Product.ID, req.Amount.String())

	if !u.mode.IsLive() {
		log.Printf("[pix][usecase] gateway credentials not configured; returning demo payment")
		return u.record(ctx, req, u.demo.Generate(req, entities.FallbackCredentialsMissing))
	}

	if !req.Amount.IsPositive() {
		log.Printf("[pix][usecase] invalid amount=%s; returning demo payment", req.Amount.String())
		return u.record(ctx, req, u.demo.Generate(req, entities.FallbackInvalidRequest))
	}

	if !document.ValidCPF(req.Client.Document) {
		log.Printf("[pix][usecase] warn invalid client document; returning demo payment product_id=%s", req.Product.ID)
		return u.record(ctx, req, u.demo.Generate(req, entities.FallbackInvalidDocument))
	}

	outbound := req
	outbound.Client.Document = document.Digits(req.Client.Document)
	outbound.Client.Phone = document.Digits(req.Client.Phone)
	identifier := newChargeIdentifier(u.now())

	log.Printf("[pix][usecase] calling payment gateway identifier=%s", identifier)
	p, err := u.mode.gateway.CreatePixCharge(ctx, identifier, outbound)
	if err == nil {
		err = validateGatewayPayment(p)
	}
	if err != nil {
		log.Printf("[pix][usecase] payment gateway failed; falling back to demo identifier=%s err=%v", identifier, err)
		return u.record(ctx, req, u.demo.Generate(req, entities.FallbackGatewayError))
	}

	p = u.completeLivePayment(req, p)
	log.Printf("[pix][usecase] create success transaction_id=%s status=%s", p.TransactionID, p.Status)
	return u.record(ctx, req, p)
}

func (u *PixPaymentUseCase) CheckStatus(ctx context.Context, transactionID string) entities.PaymentStatusResult {
	transactionID = strings.TrimSpace(transactionID)

	if !u.mode.IsLive() {
		return entities.NewPaymentStatusResult(entities.PaymentStatusPending)
	}
	if transactionID == "" {
		log.Printf("[pix][usecase] check-status invalid transaction_id (empty)")
		return entities.NewPaymentStatusResult(entities.PaymentStatusError)
	}
	if strings.HasPrefix(transactionID, entities.DemoTransactionPrefix) {
		return entities.NewPaymentStatusResult(entities.PaymentStatusPending)
	}

	status, err := u.mode.gateway.GetTransactionStatus(ctx, transactionID)
	if err != nil {
		log.Printf("[pix][usecase] check-status failed transaction_id=%s err=%v", transactionID, err)
		return entities.NewPaymentStatusResult(entities.PaymentStatusError)
	}
	if status == "" {
		log.Printf("[pix][usecase] check-status empty gateway status transaction_id=%s", transactionID)
		return entities.NewPaymentStatusResult(entities.PaymentStatusError)
	}

	res := entities.NewPaymentStatusResult(status)
	if res.Paid {
		log.Printf("[pix][usecase] payment settled transaction_id=%s status=%s", transactionID, status)
		u.updateAttemptStatus(ctx, transactionID, status)
	}
	return res
}

func (u *PixPaymentUseCase) GetAttempt(ctx context.Context, transactionID string) (entities.CheckoutAttempt, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.CheckoutAttempt{}, ErrInvalidTransactionID
	}
	if u.attempts == nil {
		return entities.CheckoutAttempt{}, ErrAttemptAuditDisabled
	}

	a, err := u.attempts.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return entities.CheckoutAttempt{}, err
	}
	if a.TransactionID == "" {
		return entities.CheckoutAttempt{}, ErrCheckoutAttemptNotFound
	}
	return a, nil
}

// completeLivePayment fills the fields the gateway may omit. The order amount
// always echoes the requested amount.
func (u *PixPaymentUseCase) completeLivePayment(req entities.PaymentRequest, p entities.PixPayment) entities.PixPayment {
	p.Provenance = entities.ProvenanceLive
	p.FallbackReason = entities.FallbackNone
	if p.Status == "" {
		p.Status = entities.PaymentStatusPending
	}
	if strings.TrimSpace(p.Order.ID) == "" {
		p.Order.ID = p.TransactionID
	}
	p.Order.Amount = req.Amount
	if p.Pix.ExpiresAt.IsZero() {
		p.Pix.ExpiresAt = u.now().UTC().Add(entities.DefaultPixExpiration)
	}
	return p
}

func (u *PixPaymentUseCase) record(ctx context.Context, req entities.PaymentRequest, p entities.PixPayment) entities.PixPayment {
	if u.attempts == nil {
		return p
	}
	if _, err := u.attempts.Create(ctx, entities.NewCheckoutAttempt(req, p, u.now().UTC())); err != nil {
		log.Printf("[pix][usecase] checkout attempt audit failed transaction_id=%s err=%v", p.TransactionID, err)
	}
	return p
}

func (u *PixPaymentUseCase) updateAttemptStatus(ctx context.Context, transactionID string, status entities.PaymentStatus) {
	if u.attempts == nil {
		return
	}
	if _, err := u.attempts.UpdateStatus(ctx, transactionID, status); err != nil {
		log.Printf("[pix][usecase] checkout attempt status update failed transaction_id=%s err=%v", transactionID, err)
	}
}

func validateGatewayPayment(p entities.PixPayment) error {
	if strings.TrimSpace(p.TransactionID) == "" {
		return fmt.Errorf("%w: missing transaction id", ErrMalformedGatewayPayment)
	}
	if !pix.HasBRCodeSignature(p.Pix.CopyPaste) {
		return fmt.Errorf("%w: copy-paste code is not a PIX BR Code", ErrMalformedGatewayPayment)
	}
	return nil
}

// newChargeIdentifier is unix millis followed by a short random id.
func newChargeIdentifier(now time.Time) string {
	return fmt.Sprintf("%d%s", now.UnixMilli(), randomID(identifierSuffixSize))
}
