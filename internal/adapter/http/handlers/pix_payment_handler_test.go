package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"escolha_divina/internal/adapter/http/handlers/mocks"
	"escolha_divina/internal/domain/entities"
	"escolha_divina/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func testOffer() entities.Product {
	return entities.Product{ID: "uncao-sagrada", Name: "Unção Sagrada", Quantity: 1, Price: decimal.RequireFromString("29.90")}
}

func newPixRouter(h *PixPaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments/pix", h.CreatePix)
	r.POST("/v1/rpc/payment.createPix", h.CreatePix)
	r.GET("/v1/payments/pix/:transaction_id/status", h.CheckStatus)
	r.GET("/v1/rpc/payment.checkStatus", h.CheckStatusRPC)
	r.GET("/v1/payments/attempts/:transaction_id", h.GetAttempt)
	return r
}

func TestPixPaymentHandler_CreatePix(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := newPixRouter(NewPixPaymentHandler(uc, testOffer(), ""))

		for _, body := range []string{"{", `{"name":"João","email":"nope","document":"12345678901"}`, `{"name":"João","email":"j@x.com","document":"123"}`} {
			req := httptest.NewRequest(http.MethodPost, "/v1/payments/pix", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 for %s, got %d", body, w.Code)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := newPixRouter(NewPixPaymentHandler(uc, testOffer(), "https://example.com/hook"))

		expires := time.Date(2026, 1, 1, 10, 30, 0, 0, time.UTC)
		uc.EXPECT().CreatePix(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.PaymentRequest) entities.PixPayment {
			if !req.Amount.Equal(decimal.RequireFromString("29.90")) || req.Product.ID != "uncao-sagrada" {
				t.Fatalf("unexpected payment request: %+v", req)
			}
			if req.Client.Document != "12345678901" || req.CallbackURL != "https://example.com/hook" {
				t.Fatalf("unexpected client data: %+v", req)
			}
			return entities.PixPayment{
				TransactionID: "demo_abc",
				Status:        entities.PaymentStatusPending,
				Order:         entities.PixOrder{ID: "demo_abc", Amount: req.Amount},
				Pix:           entities.PixCode{QRCode: "iVBOR", CopyPaste: "00020126", ExpiresAt: expires},
				Provenance:    entities.ProvenanceDemo,
			}
		})

		body := `{"name":"João da Silva","email":"joao@email.com","phone":"11999999999","document":"12345678901"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/rpc/payment.createPix", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got["transactionId"] != "demo_abc" || got["provenance"] != "demo" {
			t.Fatalf("unexpected body: %v", got)
		}
		order := got["order"].(map[string]any)
		if order["amount"] != 29.9 {
			t.Fatalf("unexpected amount: %v", order["amount"])
		}
		pix := got["pix"].(map[string]any)
		if pix["expiresAt"] != "2026-01-01T10:30:00.000Z" {
			t.Fatalf("unexpected expiresAt: %v", pix["expiresAt"])
		}
	})
}

func TestPixPaymentHandler_CheckStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("path form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := newPixRouter(NewPixPaymentHandler(uc, testOffer(), ""))

		uc.EXPECT().CheckStatus(gomock.Any(), "tx-1").Return(entities.NewPaymentStatusResult(entities.PaymentStatusPaid))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/pix/tx-1/status", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"status":"paid","paid":true}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("rpc form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := newPixRouter(NewPixPaymentHandler(uc, testOffer(), ""))

		uc.EXPECT().CheckStatus(gomock.Any(), "demo_test123").Return(entities.NewPaymentStatusResult(entities.PaymentStatusPending))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/rpc/payment.checkStatus?transactionId=demo_test123", nil))

		if w.Code != http.StatusOK || w.Body.String() != `{"status":"pending","paid":false}` {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})
}

func TestPixPaymentHandler_GetAttempt(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid id", err: usecase.ErrInvalidTransactionID, want: http.StatusBadRequest},
		{name: "not found", err: usecase.ErrCheckoutAttemptNotFound, want: http.StatusNotFound},
		{name: "audit disabled", err: usecase.ErrAttemptAuditDisabled, want: http.StatusNotFound},
		{name: "internal", err: errors.New("db"), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPixPaymentUseCase(ctrl)
			r := newPixRouter(NewPixPaymentHandler(uc, testOffer(), ""))

			uc.EXPECT().GetAttempt(gomock.Any(), "tx-1").Return(entities.CheckoutAttempt{}, tc.err)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/attempts/tx-1", nil))
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := newPixRouter(NewPixPaymentHandler(uc, testOffer(), ""))

		uc.EXPECT().GetAttempt(gomock.Any(), "tx-1").Return(entities.CheckoutAttempt{
			TransactionID: "tx-1",
			Amount:        decimal.RequireFromString("29.90"),
			Status:        entities.PaymentStatusPaid,
			Provenance:    entities.ProvenanceLive,
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/attempts/tx-1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"transactionId":"tx-1"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
