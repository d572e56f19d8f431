package routes

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "smartcontract/docs" // This will be auto-generated
	"smartcontract/internal/adapter/http/handlers"
	"smartcontract/internal/adapter/persistence/memory"
	"smartcontract/internal/infrastructure/clock"
	"smartcontract/internal/infrastructure/documents"
	"smartcontract/internal/infrastructure/export"
	"smartcontract/internal/infrastructure/upload"
	"smartcontract/internal/usecase"
	"smartcontract/internal/usecase/interfaces"
	"smartcontract/internal/usecase/session"
)

var router = gin.New()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", defaultPort)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	sess := session.New()
	quotationStore := memory.NewQuotationStore()
	contractStore := memory.NewContractStore()
	exporter := export.NewFileExporterFromEnv()
	clk := clock.SystemClock{}
	idgen := clock.NewTimestampIDGenerator()

	var gateway interfaces.IDocumentGateway
	docGateway, err := documents.NewHTTPDocumentGateway(os.Getenv("DOCUMENT_SERVICE_URL"))
	if err != nil {
		log.Printf("Document service gateway not configured: %v", err)
	} else {
		gateway = docGateway
	}

	quotationUseCase := usecase.NewQuotationUseCase(quotationStore, exporter, clk, idgen, sess)
	contractUseCase := usecase.NewContractUseCase(contractStore, gateway, exporter, clk, idgen, sess)
	reviewUseCase := usecase.NewReviewUseCase(gateway, quotationStore, contractStore, sess)
	signatureUseCase := usecase.NewSignatureUseCase(clk, signatureDelayFromEnv(), sess)

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	contractHandler := handlers.NewContractHandler(contractUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)
	signatureHandler := handlers.NewSignatureHandler(signatureUseCase)
	uploadHandler := handlers.NewUploadHandler(upload.NewDocumentValidator())
	sessionHandler := handlers.NewSessionHandler(sess)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDocumentRoutes(v1, quotationHandler, contractHandler, reviewHandler, signatureHandler, uploadHandler, sessionHandler)
}

func setMiddlewares() {
	router.Use(corsMiddleware())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// corsMiddleware allows every origin unless ALLOWED_ORIGINS narrows it.
func corsMiddleware() gin.HandlerFunc {
	origins := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS"))
	if origins == "" {
		return cors.Default()
	}

	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowedOrigins[origin] = true
		}
	}
	log.Printf("Allowed origins: %v", allowedOrigins)
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func signatureDelayFromEnv() time.Duration {
	if v := os.Getenv("SIGNATURE_DELAY_MS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			return time.Duration(parsed) * time.Millisecond
		}
	}
	return usecase.DefaultSignatureDelay
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
