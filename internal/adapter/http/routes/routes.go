package routes

import (
	"log"
	"os"
	"strconv"

	_ "quoteforge/docs" // This will be auto-generated
	"quoteforge/internal/adapter/http/handlers"
	repository2 "quoteforge/internal/adapter/persistence/repository"
	"quoteforge/internal/infrastructure/ai"
	"quoteforge/internal/infrastructure/database"
	"quoteforge/internal/infrastructure/market"
	"quoteforge/internal/infrastructure/payments"
	"quoteforge/internal/usecase"
	"quoteforge/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	drawingRepo := repository2.NewDrawingDynamoRepository(ddb)
	paymentRepo := repository2.NewQuotePaymentDynamoRepository(ddb)

	claude, err := ai.NewClaudeService(os.Getenv("ANTHROPIC_API_KEY"), os.Getenv("ANTHROPIC_MODEL"))
	if err != nil {
		log.Fatalf("Claude service not configured: %v", err)
	}

	calculator := usecase.NewCostCalculator(usecase.DefaultCostTables())
	adjuster := usecase.NewMarketAdjustmentEngine(market.NewMockMarketDataProvider())

	quoteUseCase := usecase.NewQuoteUseCase(claude, claude, claude, calculator, adjuster, quoteRepo, drawingRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewQuotePaymentUseCase(paymentRepo, quoteRepo, paymentGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, drawingRepo)
	paymentHandler := handlers.NewQuotePaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
