package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"escolha_divina/internal/domain/entities"
	"escolha_divina/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

const mercadoPagoPixMethod = "pix"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// mercadoPagoPayments is the subset of payment.Client the gateway needs.
type mercadoPagoPayments interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoGateway issues PIX charges through Mercado Pago's payments API.
type MercadoPagoGateway struct {
	client      mercadoPagoPayments
	callbackURL string
}

var _ interfaces.IPixGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, callbackURL string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[pix][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[pix][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[pix][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), callbackURL: callbackURL}, nil
}

// mercadoPagoPixResponse is the part of the payment response a PIX charge uses.
type mercadoPagoPixResponse struct {
	ID                 int64  `json:"id"`
	Status             string `json:"status"`
	DateOfExpiration   string `json:"date_of_expiration"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

func (g *MercadoPagoGateway) CreatePixCharge(ctx context.Context, identifier string, req entities.PaymentRequest) (entities.PixPayment, error) {
	if g == nil || g.client == nil {
		log.Printf("[pix][gateway] gateway not configured")
		return entities.PixPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	payload, err := g.buildPaymentRequest(identifier, req)
	if err != nil {
		return entities.PixPayment{}, err
	}

	log.Printf("[pix][gateway] mercadopago create start identifier=%s amount=%s", identifier, req.Amount.StringFixed(2))
	resp, err := g.client.Create(ctx, payload)
	if err != nil {
		log.Printf("[pix][gateway] sdk create failed identifier=%s err=%v", identifier, err)
		return entities.PixPayment{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[pix][gateway] response marshal failed err=%v", err)
		return entities.PixPayment{}, err
	}
	var pixResp mercadoPagoPixResponse
	if err := json.Unmarshal(b, &pixResp); err != nil {
		return entities.PixPayment{}, fmt.Errorf("decode mercado pago response: %w", err)
	}

	log.Printf("[pix][gateway] mercadopago create success provider_payment_id=%d provider_status=%s", pixResp.ID, pixResp.Status)

	return entities.PixPayment{
		TransactionID: strconv.FormatInt(pixResp.ID, 10),
		Status:        mapMercadoPagoStatus(pixResp.Status),
		Order:         entities.PixOrder{ID: identifier, Amount: req.Amount},
		Pix: entities.PixCode{
			QRCode:    pixResp.PointOfInteraction.TransactionData.QRCodeBase64,
			CopyPaste: pixResp.PointOfInteraction.TransactionData.QRCode,
			ExpiresAt: parseExpiresAt(pixResp.DateOfExpiration),
		},
	}, nil
}

func (g *MercadoPagoGateway) GetTransactionStatus(ctx context.Context, transactionID string) (entities.PaymentStatus, error) {
	if g == nil || g.client == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	id, err := strconv.Atoi(strings.TrimSpace(transactionID))
	if err != nil {
		return "", fmt.Errorf("invalid mercado pago payment id %q: %w", transactionID, err)
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[pix][gateway] sdk get failed provider_payment_id=%d err=%v", id, err)
		return "", err
	}
	return mapMercadoPagoStatus(resp.Status), nil
}

// buildPaymentRequest goes through JSON so the payload keeps Mercado Pago's
// field names without depending on SDK struct layout.
func (g *MercadoPagoGateway) buildPaymentRequest(identifier string, req entities.PaymentRequest) (payment.Request, error) {
	firstName, lastName := splitName(req.Client.Name)
	body := map[string]any{
		"transaction_amount": req.Amount.InexactFloat64(),
		"description":        req.Product.Name,
		"payment_method_id":  mercadoPagoPixMethod,
		"external_reference": identifier,
		"date_of_expiration": time.Now().UTC().Add(entities.DefaultPixExpiration).Format("2006-01-02T15:04:05.000Z07:00"),
		"payer": map[string]any{
			"email":      req.Client.Email,
			"first_name": firstName,
			"last_name":  lastName,
			"identification": map[string]any{
				"type":   "CPF",
				"number": req.Client.Document,
			},
		},
		"metadata": map[string]any{
			"source":     checkoutSource,
			"product_id": req.Product.ID,
		},
	}
	callbackURL := req.CallbackURL
	if callbackURL == "" {
		callbackURL = g.callbackURL
	}
	if callbackURL != "" {
		body["notification_url"] = callbackURL
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return payment.Request{}, err
	}
	var out payment.Request
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("[pix][gateway] payload unmarshal failed err=%v", err)
		return payment.Request{}, err
	}
	return out, nil
}

// mapMercadoPagoStatus folds Mercado Pago's lifecycle into checkout statuses.
func mapMercadoPagoStatus(status string) entities.PaymentStatus {
	switch strings.ToLower(status) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "pending", "in_process", "in_mediation":
		return entities.PaymentStatusPending
	case "":
		return ""
	default:
		return entities.PaymentStatus(strings.ToLower(status))
	}
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
