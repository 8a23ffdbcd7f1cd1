package handlers

import (
	"errors"
	"log"
	"net/http"

	request "escolha_divina/internal/adapter/http/dto/request"
	response "escolha_divina/internal/adapter/http/dto/response"
	"escolha_divina/internal/domain/entities"
	"escolha_divina/internal/usecase"
	"escolha_divina/pkg"

	"github.com/gin-gonic/gin"
)

// ContextKeyRequestID is the gin context key holding the request id set by the router.
const ContextKeyRequestID = "request_id"

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
)

// PixPaymentHandler serves the checkout's PIX endpoints.
type PixPaymentHandler struct {
	usecase     usecase.IPixPaymentUseCase
	offer       entities.Product
	callbackURL string
}

// NewPixPaymentHandler binds the handler to the single offer sold by the checkout.
func NewPixPaymentHandler(uc usecase.IPixPaymentUseCase, offer entities.Product, callbackURL string) *PixPaymentHandler {
	return &PixPaymentHandler{usecase: uc, offer: offer, callbackURL: callbackURL}
}

// CreatePix godoc
// @Summary      Create a PIX charge
// @Description  Creates a PIX charge for the configured offer. Falls back to a demo payment when the gateway is unavailable.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.PixPaymentCreateRequest  true  "Buyer data"
// @Success      200      {object}  response.PixPaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /payments/pix [post]
// @Router       /rpc/payment.createPix [post]
func (h *PixPaymentHandler) CreatePix(c *gin.Context) {
	var payload request.PixPaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[pix][handler] invalid create payload request_id=%s err=%v", c.GetString(ContextKeyRequestID), err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	p := h.usecase.CreatePix(c.Request.Context(), payload.ToPaymentRequest(h.offer, h.callbackURL))
	log.Printf("[pix][handler] create done request_id=%s transaction_id=%s provenance=%s", c.GetString(ContextKeyRequestID), p.TransactionID, p.Provenance)

	c.JSON(http.StatusOK, response.FromPixPayment(p))
}

// CheckStatus godoc
// @Summary      Poll a PIX charge
// @Tags         payments
// @Produce      json
// @Param        transaction_id  path      string  true  "Transaction ID"
// @Success      200             {object}  response.PaymentStatusResponse
// @Router       /payments/pix/{transaction_id}/status [get]
func (h *PixPaymentHandler) CheckStatus(c *gin.Context) {
	h.checkStatus(c, c.Param("transaction_id"))
}

// CheckStatusRPC godoc
// @Summary      Poll a PIX charge (RPC form)
// @Tags         rpc
// @Produce      json
// @Param        transactionId  query     string  false  "Transaction ID"
// @Success      200            {object}  response.PaymentStatusResponse
// @Failure      400            {object}  pkg.HTTPError
// @Router       /rpc/payment.checkStatus [get]
func (h *PixPaymentHandler) CheckStatusRPC(c *gin.Context) {
	var query request.CheckStatusRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.checkStatus(c, query.TransactionID)
}

func (h *PixPaymentHandler) checkStatus(c *gin.Context, transactionID string) {
	res := h.usecase.CheckStatus(c.Request.Context(), transactionID)
	c.JSON(http.StatusOK, response.FromPaymentStatusResult(res))
}

// GetAttempt godoc
// @Summary      Read an audited checkout attempt
// @Tags         payments
// @Produce      json
// @Param        transaction_id  path      string  true  "Transaction ID"
// @Success      200             {object}  response.CheckoutAttemptResponse
// @Failure      400             {object}  pkg.HTTPError
// @Failure      404             {object}  pkg.HTTPError
// @Router       /payments/attempts/{transaction_id} [get]
func (h *PixPaymentHandler) GetAttempt(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	a, err := h.usecase.GetAttempt(c.Request.Context(), transactionID)
	if err != nil {
		log.Printf("[pix][handler] get-attempt failed request_id=%s transaction_id=%s err=%v", c.GetString(ContextKeyRequestID), transactionID, err)
		appErr := mapPixPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutAttempt(a))
}

func mapPixPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckoutAttemptNotFound), errors.Is(err, usecase.ErrAttemptAuditDisabled):
		return pkg.NewDomainErrorSimple("CHECKOUT_ATTEMPT_NOT_FOUND", "Checkout attempt not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
