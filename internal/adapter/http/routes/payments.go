package routes

import (
	"escolha_divina/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathRPC      = "/rpc"
)

func addPaymentRoutes(rg *gin.RouterGroup, pixHandler *handlers.PixPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/pix", pixHandler.CreatePix)
		payments.GET("/pix/:transaction_id/status", pixHandler.CheckStatus)
		payments.GET("/attempts/:transaction_id", pixHandler.GetAttempt)
	}

	// Procedure-style aliases used by the checkout page.
	rpc := rg.Group(PathRPC)
	{
		rpc.POST("/payment.createPix", pixHandler.CreatePix)
		rpc.GET("/payment.checkStatus", pixHandler.CheckStatusRPC)
	}
}
