package routes

import (
	"context"
	"log"

	_ "escolha_divina/docs" // This will be auto-generated
	"escolha_divina/internal/adapter/http/handlers"
	"escolha_divina/internal/adapter/persistence/repository"
	"escolha_divina/internal/domain/entities"
	"escolha_divina/internal/infrastructure/config"
	"escolha_divina/internal/infrastructure/database"
	"escolha_divina/internal/infrastructure/payments"
	"escolha_divina/internal/infrastructure/qrcode"
	"escolha_divina/internal/usecase"
	"escolha_divina/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(cfg config.Config) {
	uc, err := NewPixPaymentUseCase(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to configure payments: %v", err)
	}

	router := NewRouter(uc, cfg)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the gin engine serving the checkout API.
func NewRouter(uc usecase.IPixPaymentUseCase, cfg config.Config) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	pixHandler := handlers.NewPixPaymentHandler(uc, CheckoutOffer(cfg.Checkout), cfg.Gateway.CallbackURL)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, pixHandler)
	return router
}

// NewPixPaymentUseCase wires the payment client from cfg. Missing gateway
// credentials select demo mode.
func NewPixPaymentUseCase(ctx context.Context, cfg config.Config) (*usecase.PixPaymentUseCase, error) {
	mode := usecase.Demo()
	if gateway := newPixGateway(cfg.Gateway); gateway != nil {
		mode = usecase.Live(gateway)
	}
	log.Printf("[pix][setup] payment client mode=%s provider=%s", mode, cfg.Gateway.Provider)

	demo := usecase.NewDemoPixGenerator(qrcode.NewPNGEncoder(qrcode.DefaultSize), usecase.DemoMerchant{
		Name: cfg.Checkout.MerchantName,
		City: cfg.Checkout.MerchantCity,
	})

	var attempts interfaces.ICheckoutAttemptRepository
	if cfg.Audit.Enabled {
		ddb, err := database.ConnectDynamoDB(ctx, cfg.Audit)
		if err != nil {
			return nil, err
		}
		attempts = repository.NewCheckoutAttemptDynamoRepository(ddb, cfg.Audit.TableName)
		log.Printf("[pix][setup] checkout attempt audit enabled table=%s", cfg.Audit.TableName)
	}

	return usecase.NewPixPaymentUseCase(mode, demo, attempts), nil
}

// newPixGateway returns nil when the selected provider is not configured.
func newPixGateway(cfg config.GatewayConfig) interfaces.IPixGateway {
	if !cfg.Configured() {
		log.Printf("[pix][setup] payment gateway credentials not configured provider=%s", cfg.Provider)
		return nil
	}

	switch cfg.Provider {
	case config.ProviderMercadoPago:
		g, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.CallbackURL)
		if err != nil {
			log.Printf("Mercado Pago gateway not configured: %v", err)
			return nil
		}
		return g
	default:
		g, err := payments.NewLXPayGateway(cfg, nil)
		if err != nil {
			log.Printf("LX Pay gateway not configured: %v", err)
			return nil
		}
		return g
	}
}

// CheckoutOffer is the product every checkout charges for.
func CheckoutOffer(cfg config.CheckoutConfig) entities.Product {
	return entities.Product{
		ID:       cfg.ProductID,
		Name:     cfg.ProductName,
		Quantity: cfg.ProductQuantity,
		Price:    cfg.ProductPrice,
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(requestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
