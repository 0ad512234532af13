package routes

import (
	_ "devfolio/docs" // This will be auto-generated
	"devfolio/internal/adapter/http/handlers"
	repository2 "devfolio/internal/adapter/persistence/repository"
	"devfolio/internal/infrastructure/database"
	"devfolio/internal/infrastructure/payments"
	"devfolio/internal/usecase"
	"devfolio/internal/usecase/interfaces"
	"log"
	"os"
	"strconv"

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

	assessmentRepo := repository2.NewAssessmentDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)

	assessmentUseCase := usecase.NewAssessmentUseCase(assessmentRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, assessmentRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, quoteRepo, paymentGateway)

	assessmentHandler := handlers.NewAssessmentHandler(assessmentUseCase)
	pricingHandler := handlers.NewPricingHandler(quoteUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFunnelRoutes(v1, assessmentHandler, pricingHandler, quoteHandler, invoiceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
