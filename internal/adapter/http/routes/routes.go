package routes

import (
	"log"
	"os"
	"strconv"

	_ "zapshift/docs" // This will be auto-generated
	"zapshift/internal/adapter/http/handlers"
	repository2 "zapshift/internal/adapter/persistence/repository"
	"zapshift/internal/domain/tracking"
	"zapshift/internal/infrastructure/database"
	"zapshift/internal/infrastructure/payments"
	"zapshift/internal/usecase"
	"zapshift/internal/usecase/interfaces"

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

	parcelRepo := repository2.NewParcelDynamoRepository(ddb)
	ledgerRepo := repository2.NewPaymentLedgerDynamoRepository(ddb)
	generator := tracking.NewGenerator(os.Getenv("TRACKING_PREFIX"))

	var gateway interfaces.ICheckoutGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}

	parcelUseCase := usecase.NewParcelUseCase(parcelRepo, ledgerRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(parcelRepo, gateway, os.Getenv("CHECKOUT_CURRENCY"))
	reconcileUseCase := usecase.NewReconciliationUseCase(parcelRepo, ledgerRepo, gateway, generator)

	parcelHandler := handlers.NewParcelHandler(parcelUseCase)
	paymentHandler := handlers.NewPaymentHandler(checkoutUseCase, reconcileUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addParcelRoutes(v1, parcelHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
