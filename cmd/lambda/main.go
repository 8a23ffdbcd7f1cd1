package main

import (
	"context"
	"log"

	"escolha_divina/internal/adapter/http/routes"
	lambdaadapter "escolha_divina/internal/adapter/lambda"
	"escolha_divina/internal/infrastructure/config"

	"github.com/aws/aws-lambda-go/lambda"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	uc, err := routes.NewPixPaymentUseCase(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to configure payments: %v", err)
	}

	h := lambdaadapter.NewHandler(uc, routes.CheckoutOffer(cfg.Checkout), cfg.Gateway.CallbackURL)
	lambda.Start(h.Handle)
}
