package routes

import (
	"log"
	"os"
	"strconv"

	_ "cobranza_campo/docs" // This will be auto-generated
	"cobranza_campo/internal/adapter/http/handlers"
	repository2 "cobranza_campo/internal/adapter/persistence/repository"
	"cobranza_campo/internal/infrastructure/collections"
	"cobranza_campo/internal/infrastructure/database"
	"cobranza_campo/internal/infrastructure/session"
	"cobranza_campo/internal/usecase"
	"cobranza_campo/internal/usecase/interfaces"

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
	pagoRepo := newPendingPaymentRepository()

	var submitter interfaces.IPaymentSubmitter
	client, err := collections.NewClient(os.Getenv("COLLECTIONS_API_URL"), session.NewEnvTokenProvider())
	if err != nil {
		log.Printf("Collections client not configured: %v", err)
	} else {
		submitter = client
	}

	pagoUseCase := usecase.NewPendingPaymentUseCase(pagoRepo)
	syncUseCase := usecase.NewSyncUseCase(pagoRepo, submitter)

	pagoHandler := handlers.NewPendingPaymentHandler(pagoUseCase)
	syncHandler := handlers.NewSyncHandler(syncUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCobranzaRoutes(v1, pagoHandler, syncHandler)
}

// newPendingPaymentRepository picks the queue backing per PENDING_STORE:
// "dynamodb" (default) or "file" for the device-compatible JSON store.
func newPendingPaymentRepository() interfaces.IPendingPaymentRepository {
	if os.Getenv("PENDING_STORE") == "file" {
		log.Printf("Using file-backed pending payment store")
		return repository2.NewPendingPaymentFileRepository("")
	}
	return repository2.NewPendingPaymentDynamoRepository(database.ConnectDynamoDB())
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
