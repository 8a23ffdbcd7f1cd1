package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ProviderLXPay       = "lxpay"
	ProviderMercadoPago = "mercadopago"

	DefaultPort               = "8080"
	DefaultLXPayBaseURL       = "https://api.lxpay.com.br"
	DefaultGatewayTimeout     = 30 * time.Second
	DefaultProductID          = "uncao-sagrada"
	DefaultProductName        = "Unção Sagrada - Manuscrito do Arcanjo Miguel"
	DefaultProductPrice       = "29.90"
	DefaultAttemptsTableName  = "checkout_attempts"
	DefaultAWSRegion          = "us-east-1"
	DefaultLocalAWSCredential = "local"
)

var (
	ErrUnknownProvider = errors.New("unknown PAYMENT_PROVIDER")
	ErrInvalidPrice    = errors.New("invalid CHECKOUT_PRODUCT_PRICE")
	ErrInvalidQuantity = errors.New("invalid CHECKOUT_PRODUCT_QUANTITY")
	ErrInvalidTimeout  = errors.New("invalid LXPAY_TIMEOUT")
)

// Config is everything the service reads from the environment.
type Config struct {
	Server   ServerConfig
	Gateway  GatewayConfig
	Checkout CheckoutConfig
	Audit    AuditConfig
}

type ServerConfig struct {
	Port string
}

type GatewayConfig struct {
	Provider               string
	BaseURL                string
	PublicKey              string
	SecretKey              string
	MercadoPagoAccessToken string
	Timeout                time.Duration
	CallbackURL            string
}

// Configured reports whether the selected provider has credentials. An
// unconfigured gateway means the service runs in demo mode.
func (g GatewayConfig) Configured() bool {
	switch g.Provider {
	case ProviderMercadoPago:
		return g.MercadoPagoAccessToken != ""
	default:
		return g.PublicKey != "" && g.SecretKey != ""
	}
}

// CheckoutConfig is the single offer sold by the funnel.
type CheckoutConfig struct {
	ProductID       string
	ProductName     string
	ProductQuantity int
	ProductPrice    decimal.Decimal
	MerchantName    string
	MerchantCity    string
}

// Amount is the charge total for the offer.
func (c CheckoutConfig) Amount() decimal.Decimal {
	return c.ProductPrice.Mul(decimal.NewFromInt(int64(c.ProductQuantity)))
}

// AuditConfig configures the DynamoDB checkout audit. The static keys are only
// used against a local Endpoint; AWS deployments use the default credential
// chain.
type AuditConfig struct {
	Enabled         bool
	TableName       string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	provider := strings.ToLower(strings.TrimSpace(getenvDefault("PAYMENT_PROVIDER", ProviderLXPay)))
	if provider != ProviderLXPay && provider != ProviderMercadoPago {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}

	timeout := DefaultGatewayTimeout
	if raw := strings.TrimSpace(os.Getenv("LXPAY_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("%w: %q", ErrInvalidTimeout, raw)
		}
		timeout = d
	}

	price, err := decimal.NewFromString(getenvDefault("CHECKOUT_PRODUCT_PRICE", DefaultProductPrice))
	if err != nil || !price.IsPositive() {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidPrice, os.Getenv("CHECKOUT_PRODUCT_PRICE"))
	}

	quantity, err := strconv.Atoi(getenvDefault("CHECKOUT_PRODUCT_QUANTITY", "1"))
	if err != nil || quantity < 1 {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidQuantity, os.Getenv("CHECKOUT_PRODUCT_QUANTITY"))
	}

	return Config{
		Server: ServerConfig{
			Port: getenvDefault("PORT", DefaultPort),
		},
		Gateway: GatewayConfig{
			Provider:               provider,
			BaseURL:                strings.TrimRight(getenvDefault("LXPAY_API_URL", DefaultLXPayBaseURL), "/"),
			PublicKey:              strings.TrimSpace(os.Getenv("LXPAY_PUBLIC_KEY")),
			SecretKey:              strings.TrimSpace(os.Getenv("LXPAY_SECRET_KEY")),
			MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			Timeout:                timeout,
			CallbackURL:            strings.TrimSpace(os.Getenv("PIX_CALLBACK_URL")),
		},
		Checkout: CheckoutConfig{
			ProductID:       getenvDefault("CHECKOUT_PRODUCT_ID", DefaultProductID),
			ProductName:     getenvDefault("CHECKOUT_PRODUCT_NAME", DefaultProductName),
			ProductQuantity: quantity,
			ProductPrice:    price,
			MerchantName:    os.Getenv("PIX_MERCHANT_NAME"),
			MerchantCity:    os.Getenv("PIX_MERCHANT_CITY"),
		},
		Audit: AuditConfig{
			Enabled:         parseBool(os.Getenv("CHECKOUT_AUDIT_ENABLED")),
			TableName:       getenvDefault("CHECKOUT_ATTEMPTS_TABLE", DefaultAttemptsTableName),
			Region:          getenvDefault("AWS_REGION", DefaultAWSRegion),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:     strings.TrimSpace(os.Getenv("AWS_ACCESS_KEY_ID")),
			SecretAccessKey: strings.TrimSpace(os.Getenv("AWS_SECRET_ACCESS_KEY")),
		},
	}, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
