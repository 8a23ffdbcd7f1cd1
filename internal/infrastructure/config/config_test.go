package config

import (
	"errors"
	"testing"
	"time"
)

var configKeys = []string{
	"PORT", "PAYMENT_PROVIDER", "LXPAY_PUBLIC_KEY", "LXPAY_SECRET_KEY", "LXPAY_API_URL", "LXPAY_TIMEOUT",
	"MERCADOPAGO_ACCESS_TOKEN", "PIX_CALLBACK_URL", "CHECKOUT_PRODUCT_ID", "CHECKOUT_PRODUCT_NAME",
	"CHECKOUT_PRODUCT_QUANTITY", "CHECKOUT_PRODUCT_PRICE", "PIX_MERCHANT_NAME", "PIX_MERCHANT_CITY",
	"CHECKOUT_AUDIT_ENABLED", "CHECKOUT_ATTEMPTS_TABLE", "AWS_REGION", "AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Server.Port)
	}
	if cfg.Gateway.Provider != ProviderLXPay || cfg.Gateway.BaseURL != DefaultLXPayBaseURL {
		t.Fatalf("unexpected gateway defaults: %+v", cfg.Gateway)
	}
	if cfg.Gateway.Timeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %s", cfg.Gateway.Timeout)
	}
	if cfg.Gateway.Configured() {
		t.Fatalf("gateway without keys must not be configured")
	}
	if cfg.Checkout.ProductID != "uncao-sagrada" || cfg.Checkout.ProductQuantity != 1 {
		t.Fatalf("unexpected checkout defaults: %+v", cfg.Checkout)
	}
	if cfg.Checkout.Amount().StringFixed(2) != "29.90" {
		t.Fatalf("expected 29.90, got %s", cfg.Checkout.Amount())
	}
	if cfg.Audit.Enabled || cfg.Audit.TableName != "checkout_attempts" || cfg.Audit.Region != "us-east-1" {
		t.Fatalf("unexpected audit defaults: %+v", cfg.Audit)
	}
	if cfg.Audit.AccessKeyID != "" || cfg.Audit.SecretAccessKey != "" {
		t.Fatalf("aws keys must be left to the default credential chain: %+v", cfg.Audit)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LXPAY_PUBLIC_KEY", "pk")
	t.Setenv("LXPAY_SECRET_KEY", "sk")
	t.Setenv("LXPAY_API_URL", "http://localhost:4000/")
	t.Setenv("LXPAY_TIMEOUT", "5s")
	t.Setenv("CHECKOUT_PRODUCT_PRICE", "10.50")
	t.Setenv("CHECKOUT_PRODUCT_QUANTITY", "2")
	t.Setenv("CHECKOUT_AUDIT_ENABLED", "true")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !cfg.Gateway.Configured() {
		t.Fatalf("expected configured gateway")
	}
	if cfg.Gateway.BaseURL != "http://localhost:4000" || cfg.Gateway.Timeout != 5*time.Second {
		t.Fatalf("unexpected gateway: %+v", cfg.Gateway)
	}
	if cfg.Checkout.Amount().StringFixed(2) != "21.00" {
		t.Fatalf("expected 21.00, got %s", cfg.Checkout.Amount())
	}
	if !cfg.Audit.Enabled || cfg.Audit.Endpoint != "http://dynamodb:8000" || cfg.Server.Port != "9090" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestGatewayConfig_Configured(t *testing.T) {
	cases := []struct {
		name string
		cfg  GatewayConfig
		want bool
	}{
		{name: "lxpay both keys", cfg: GatewayConfig{Provider: ProviderLXPay, PublicKey: "pk", SecretKey: "sk"}, want: true},
		{name: "lxpay missing secret", cfg: GatewayConfig{Provider: ProviderLXPay, PublicKey: "pk"}, want: false},
		{name: "mercadopago token", cfg: GatewayConfig{Provider: ProviderMercadoPago, MercadoPagoAccessToken: "tok"}, want: true},
		{name: "mercadopago ignores lxpay keys", cfg: GatewayConfig{Provider: ProviderMercadoPago, PublicKey: "pk", SecretKey: "sk"}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.Configured(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
		want  error
	}{
		{name: "provider", key: "PAYMENT_PROVIDER", value: "stripe", want: ErrUnknownProvider},
		{name: "timeout", key: "LXPAY_TIMEOUT", value: "soon", want: ErrInvalidTimeout},
		{name: "negative timeout", key: "LXPAY_TIMEOUT", value: "-1s", want: ErrInvalidTimeout},
		{name: "price", key: "CHECKOUT_PRODUCT_PRICE", value: "abc", want: ErrInvalidPrice},
		{name: "zero price", key: "CHECKOUT_PRODUCT_PRICE", value: "0", want: ErrInvalidPrice},
		{name: "quantity", key: "CHECKOUT_PRODUCT_QUANTITY", value: "0", want: ErrInvalidQuantity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
