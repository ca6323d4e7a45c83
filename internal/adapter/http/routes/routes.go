package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "travelops/docs" // This will be auto-generated
	"travelops/internal/adapter/http/handlers"
	"travelops/internal/adapter/persistence/flatfile"
	repository2 "travelops/internal/adapter/persistence/repository"
	"travelops/internal/infrastructure/database"
	"travelops/internal/infrastructure/pricing"
	"travelops/internal/usecase"

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

	packageRepo := repository2.NewPackageDynamoRepository(ddb)
	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	guideRepo := repository2.NewGuideDynamoRepository(ddb)
	calendarRepo := repository2.NewCalendarDynamoRepository(ddb)
	cancellationRepo := repository2.NewCancellationDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	inventoryUseCase := usecase.NewInventoryUseCase(packageRepo)
	scheduleUseCase := usecase.NewScheduleUseCase(guideRepo, calendarRepo, bookingRepo)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, inventoryUseCase, scheduleUseCase, pricing.NewBasePriceService())
	cancellationUseCase := usecase.NewCancellationUseCase(cancellationRepo, bookingUseCase, paymentRepo)

	// One-time replay of the legacy flat files, when configured.
	if dir := os.Getenv("LEGACY_DATA_DIR"); dir != "" {
		loader := flatfile.NewLoader(bookingRepo, guideRepo, calendarRepo, cancellationRepo)
		if err := loader.Import(context.Background(), dir); err != nil {
			log.Printf("[flatfile][routes] legacy import failed: %v", err)
		}
	}

	packageHandler := handlers.NewPackageHandler(inventoryUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	scheduleHandler := handlers.NewScheduleHandler(scheduleUseCase)
	cancellationHandler := handlers.NewCancellationHandler(cancellationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTravelRoutes(v1, packageHandler, bookingHandler, scheduleHandler, cancellationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
