package routes

import (
	"log"
	"os"
	"strconv"

	_ "tourdesk/docs" // This will be auto-generated
	"tourdesk/internal/adapter/http/handlers"
	repository2 "tourdesk/internal/adapter/persistence/repository"
	"tourdesk/internal/infrastructure/cache"
	"tourdesk/internal/infrastructure/database"
	"tourdesk/internal/infrastructure/payments"
	"tourdesk/internal/usecase"
	"tourdesk/internal/usecase/interfaces"

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

	var templateRepo interfaces.IPackageTemplateRepository = repository2.NewPackageTemplateDynamoRepository(ddb)
	if rdb := cache.ConnectRedis(); rdb != nil {
		templateRepo = repository2.NewCachedPackageTemplateRepository(templateRepo, rdb)
	}
	itineraryRepo := repository2.NewItineraryDynamoRepository(ddb)
	depositRepo := repository2.NewDepositDynamoRepository(ddb)

	configUseCase := usecase.NewItineraryConfigUseCase(templateRepo, itineraryRepo)
	scheduleUseCase := usecase.NewScheduleUseCase(itineraryRepo, templateRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	depositUseCase := usecase.NewDepositPaymentUseCase(depositRepo, itineraryRepo, paymentGateway)

	configHandler := handlers.NewConfigurationHandler(configUseCase)
	scheduleHandler := handlers.NewScheduleHandler(scheduleUseCase, configUseCase)
	depositHandler := handlers.NewDepositHandler(depositUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addItineraryRoutes(v1, configHandler, scheduleHandler, depositHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
