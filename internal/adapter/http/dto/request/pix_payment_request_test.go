package request

import (
	"testing"

	"escolha_divina/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
)

func TestPixPaymentCreateRequest_ToPaymentRequest(t *testing.T) {
	offer := entities.Product{ID: "uncao-sagrada", Name: "Unção Sagrada", Quantity: 2, Price: decimal.RequireFromString("29.90")}
	r := PixPaymentCreateRequest{Name: " João ", Email: "joao@email.com ", Phone: "", Document: " 529.982.247-25"}

	got := r.ToPaymentRequest(offer, "https://example.com/hook")

	if !got.Amount.Equal(decimal.RequireFromString("59.80")) {
		t.Fatalf("expected offer total, got %s", got.Amount)
	}
	if got.Client.Name != "João" || got.Client.Email != "joao@email.com" || got.Client.Document != "529.982.247-25" {
		t.Fatalf("unexpected client: %+v", got.Client)
	}
	if got.Product.ID != "uncao-sagrada" || got.CallbackURL != "https://example.com/hook" {
		t.Fatalf("unexpected request: %+v", got)
	}
}

func TestPixPaymentCreateRequest_Validation(t *testing.T) {
	cases := []struct {
		name    string
		req     PixPaymentCreateRequest
		wantErr bool
	}{
		{name: "valid", req: PixPaymentCreateRequest{Name: "João", Email: "joao@email.com", Document: "12345678901"}},
		{name: "formatted document", req: PixPaymentCreateRequest{Name: "João", Email: "joao@email.com", Phone: "11999999999", Document: "529.982.247-25"}},
		{name: "missing name", req: PixPaymentCreateRequest{Email: "joao@email.com", Document: "12345678901"}, wantErr: true},
		{name: "bad email", req: PixPaymentCreateRequest{Name: "João", Email: "joao", Document: "12345678901"}, wantErr: true},
		{name: "short document", req: PixPaymentCreateRequest{Name: "João", Email: "joao@email.com", Document: "1234567890"}, wantErr: true},
		{name: "long document", req: PixPaymentCreateRequest{Name: "João", Email: "joao@email.com", Document: "123456789012345"}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tc.req)
			if tc.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
