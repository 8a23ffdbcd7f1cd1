package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"escolha_divina/internal/domain/entities"
	"escolha_divina/internal/infrastructure/config"
	"escolha_divina/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	lxPayReceivePath      = "/api/v1/gateway/pix/receive"
	lxPayTransactionsPath = "/api/v1/gateway/transactions/"

	checkoutSource = "escolha-divina-anjo"
	maxErrorBody   = 2048
)

var ErrMissingLXPayCredentials = errors.New("missing LXPAY_PUBLIC_KEY or LXPAY_SECRET_KEY")

// APIError is a non-2xx answer from a payment provider.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("payment gateway error: status=%d body=%s", e.StatusCode, e.Body)
}

// LXPayGateway talks to the LX Pay PIX API.
type LXPayGateway struct {
	httpClient  *http.Client
	baseURL     string
	publicKey   string
	secretKey   string
	callbackURL string
}

var _ interfaces.IPixGateway = (*LXPayGateway)(nil)

// NewLXPayGateway builds the client from cfg. httpClient may be nil.
func NewLXPayGateway(cfg config.GatewayConfig, httpClient *http.Client) (*LXPayGateway, error) {
	if cfg.PublicKey == "" || cfg.SecretKey == "" {
		return nil, ErrMissingLXPayCredentials
	}

	baseURL := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = config.DefaultLXPayBaseURL
	}

	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = config.DefaultGatewayTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	log.Printf("[pix][gateway] LX Pay client initialized base_url=%s", baseURL)
	return &LXPayGateway{
		httpClient:  httpClient,
		baseURL:     baseURL,
		publicKey:   cfg.PublicKey,
		secretKey:   cfg.SecretKey,
		callbackURL: cfg.CallbackURL,
	}, nil
}

type lxPayClient struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
}

type lxPayProduct struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Price    json.Number `json:"price"`
}

type lxPayReceiveRequest struct {
	Identifier  string            `json:"identifier"`
	Amount      json.Number       `json:"amount"`
	Client      lxPayClient       `json:"client"`
	Products    []lxPayProduct    `json:"products"`
	CallbackURL string            `json:"callbackUrl"`
	Metadata    map[string]string `json:"metadata"`
}

type lxPayReceiveResponse struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	Order         *struct {
		ID     string          `json:"id"`
		Amount decimal.Decimal `json:"amount"`
	} `json:"order"`
	Pix *struct {
		QRCode    string `json:"qrCode"`
		CopyPaste string `json:"copyPaste"`
		ExpiresAt string `json:"expiresAt"`
	} `json:"pix"`
}

type lxPayTransactionResponse struct {
	Status string `json:"status"`
}

func (g *LXPayGateway) CreatePixCharge(ctx context.Context, identifier string, req entities.PaymentRequest) (entities.PixPayment, error) {
	callbackURL := req.CallbackURL
	if callbackURL == "" {
		callbackURL = g.callbackURL
	}

	payload := lxPayReceiveRequest{
		Identifier: identifier,
		Amount:     money(req.Amount),
		Client: lxPayClient{
			Name:     req.Client.Name,
			Email:    req.Client.Email,
			Phone:    req.Client.Phone,
			Document: req.Client.Document,
		},
		Products: []lxPayProduct{{
			ID:       req.Product.ID,
			Name:     req.Product.Name,
			Quantity: req.Product.Quantity,
			Price:    money(req.Product.Price),
		}},
		CallbackURL: callbackURL,
		Metadata: map[string]string{
			"source":      checkoutSource,
			"productType": req.Product.ID,
		},
	}

	log.Printf("[pix][gateway] create start identifier=%s amount=%s", identifier, payload.Amount)
	body, err := g.doRequest(ctx, http.MethodPost, lxPayReceivePath, payload)
	if err != nil {
		log.Printf("[pix][gateway] create failed identifier=%s err=%v", identifier, err)
		return entities.PixPayment{}, err
	}

	var resp lxPayReceiveResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return entities.PixPayment{}, fmt.Errorf("decode receive response: %w", err)
	}
	if resp.Pix == nil {
		return entities.PixPayment{}, errors.New("receive response missing pix data")
	}

	p := entities.PixPayment{
		TransactionID: resp.TransactionID,
		Status:        entities.PaymentStatus(resp.Status),
		Pix: entities.PixCode{
			QRCode:    resp.Pix.QRCode,
			CopyPaste: resp.Pix.CopyPaste,
			ExpiresAt: parseExpiresAt(resp.Pix.ExpiresAt),
		},
	}
	if resp.Order != nil {
		p.Order = entities.PixOrder{ID: resp.Order.ID, Amount: resp.Order.Amount}
	}

	log.Printf("[pix][gateway] create success identifier=%s transaction_id=%s status=%s", identifier, p.TransactionID, p.Status)
	return p, nil
}

func (g *LXPayGateway) GetTransactionStatus(ctx context.Context, transactionID string) (entities.PaymentStatus, error) {
	if transactionID == "" {
		return "", errors.New("transaction id is required")
	}

	body, err := g.doRequest(ctx, http.MethodGet, lxPayTransactionsPath+url.PathEscape(transactionID), nil)
	if err != nil {
		return "", err
	}

	var resp lxPayTransactionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode transaction response: %w", err)
	}
	return entities.PaymentStatus(resp.Status), nil
}

func (g *LXPayGateway) doRequest(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return nil, err
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("x-public-key", g.publicKey)
	req.Header.Set("x-secret-key", g.secretKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: truncateBody(data)}
	}
	return data, nil
}

// money renders an amount as a JSON number with two decimals.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func parseExpiresAt(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		log.Printf("[pix][gateway] ignoring unparseable expiresAt=%q", raw)
		return time.Time{}
	}
	return t.UTC()
}

func truncateBody(b []byte) string {
	if len(b) > maxErrorBody {
		return string(b[:maxErrorBody])
	}
	return string(b)
}
