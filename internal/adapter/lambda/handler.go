package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	request "escolha_divina/internal/adapter/http/dto/request"
	response "escolha_divina/internal/adapter/http/dto/response"
	"escolha_divina/internal/domain/entities"
	"escolha_divina/internal/usecase"
	"escolha_divina/pkg"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin/binding"
)

const (
	pathCreatePix      = "/v1/payments/pix"
	pathRPCCreatePix   = "/v1/rpc/payment.createPix"
	pathRPCCheckStatus = "/v1/rpc/payment.checkStatus"
	pathPing           = "/v1/ping"
	pixStatusPrefix    = "/v1/payments/pix/"
	pixStatusSuffix    = "/status"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
	errRouteNotFound          = pkg.NewDomainErrorSimple("NOT_FOUND", "Route not found", http.StatusNotFound)
)

// Handler serves the checkout operations from API Gateway HTTP API events.
type Handler struct {
	usecase     usecase.IPixPaymentUseCase
	offer       entities.Product
	callbackURL string
}

func NewHandler(uc usecase.IPixPaymentUseCase, offer entities.Product, callbackURL string) *Handler {
	return &Handler{usecase: uc, offer: offer, callbackURL: callbackURL}
}

func (h *Handler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	method := req.RequestContext.HTTP.Method
	path := strings.TrimSuffix(req.RawPath, "/")
	log.Printf("[pix][lambda] request method=%s path=%s request_id=%s", method, path, req.RequestContext.RequestID)

	switch {
	case method == http.MethodPost && (path == pathCreatePix || path == pathRPCCreatePix):
		return h.createPix(ctx, req)
	case method == http.MethodGet && path == pathRPCCheckStatus:
		return h.checkStatus(ctx, req.QueryStringParameters["transactionId"])
	case method == http.MethodGet && strings.HasPrefix(path, pixStatusPrefix) && strings.HasSuffix(path, pixStatusSuffix):
		id := strings.TrimSuffix(strings.TrimPrefix(path, pixStatusPrefix), pixStatusSuffix)
		return h.checkStatus(ctx, id)
	case method == http.MethodGet && path == pathPing:
		return jsonResponse(http.StatusOK, map[string]string{"message": "pong"})
	default:
		return errorResponse(errRouteNotFound)
	}
}

func (h *Handler) createPix(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return errorResponse(errInvalidCheckoutPayload)
		}
		body = decoded
	}

	var payload request.PixPaymentCreateRequest
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("[pix][lambda] invalid create payload err=%v", err)
		return errorResponse(errInvalidCheckoutPayload)
	}
	if err := binding.Validator.ValidateStruct(payload); err != nil {
		log.Printf("[pix][lambda] create payload failed validation err=%v", err)
		return errorResponse(errInvalidCheckoutPayload)
	}

	p := h.usecase.CreatePix(ctx, payload.ToPaymentRequest(h.offer, h.callbackURL))
	return jsonResponse(http.StatusOK, response.FromPixPayment(p))
}

func (h *Handler) checkStatus(ctx context.Context, transactionID string) (events.APIGatewayV2HTTPResponse, error) {
	res := h.usecase.CheckStatus(ctx, transactionID)
	return jsonResponse(http.StatusOK, response.FromPaymentStatusResult(res))
}

func jsonResponse(status int, v any) (events.APIGatewayV2HTTPResponse, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(b),
	}, nil
}

func errorResponse(appErr *pkg.AppError) (events.APIGatewayV2HTTPResponse, error) {
	return jsonResponse(appErr.HTTPStatus, appErr.ToHTTPError())
}
