package routes

import (
	"sms-assistant-backend/internal/answer"
	"sms-assistant-backend/internal/api/handlers"
	"sms-assistant-backend/internal/api/middleware"
	"sms-assistant-backend/internal/chunker"
	"sms-assistant-backend/internal/config"
	"sms-assistant-backend/internal/index"
	"sms-assistant-backend/internal/logger"
	"sms-assistant-backend/internal/repository"
	"sms-assistant-backend/internal/service"
	"sms-assistant-backend/internal/sms"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The index,
// answer and gateway collaborators hold external connections and are
// constructed by the caller.
func SetupRoutes(
	db *gorm.DB,
	cfg *config.Config,
	indexSvc index.Service,
	answers answer.Service,
	gateway sms.Gateway,
) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()
	log := logger.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	shortCodeRepo := repository.NewShortCodeRepository(db)
	areaRepo := repository.NewAreaRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	documentService := service.NewDocumentService(documentRepo)
	shortCodeService := service.NewShortCodeService(shortCodeRepo, documentRepo, validator)
	areaService := service.NewAreaService(areaRepo, validator)
	onboardingService := service.NewOnboardingService(
		organizationRepo, documentRepo, shortCodeRepo,
		indexSvc, chunker.NewPageChunker(0), validator, log,
	)
	broadcastService := service.NewBroadcastService(
		messageRepo, shortCodeRepo, areaService, gateway, validator, log,
	)
	routerService := service.NewRouterService(
		shortCodeRepo, documentRepo, areaRepo,
		indexSvc, answers, gateway,
		cfg.FallbackMessage, cfg.RegistrationMessage, log,
	)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService, documentService, onboardingService)
	shortCodeHandler := handlers.NewShortCodeHandler(shortCodeService)
	areaHandler := handlers.NewAreaHandler(areaService)
	broadcastHandler := handlers.NewBroadcastHandler(broadcastService)
	smsHandler := handlers.NewSMSHandler(routerService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Inbound SMS webhook. The gateway delivers form-encoded payloads and
	// only needs an acknowledgment.
	router.POST("/sms", smsHandler.HandleInbound)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.POST("/login", organizationHandler.Login)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.GET("/by-email/:email", organizationHandler.GetOrganizationByEmail)
			organizations.GET("/:id/documents", organizationHandler.ListDocuments)
			organizations.POST("/:id/documents", organizationHandler.UploadDocument)
		}

		// Document routes
		documents := v1.Group("/documents")
		{
			documents.DELETE("/:id", organizationHandler.DeleteDocument)
		}

		// Shortcode routes
		shortcodes := v1.Group("/shortcodes")
		{
			shortcodes.GET("", shortCodeHandler.ListShortCodes)
			shortcodes.POST("", shortCodeHandler.CreateShortCode)
			shortcodes.GET("/:code", shortCodeHandler.GetShortCode)
			shortcodes.POST("/:code/documents", shortCodeHandler.LinkDocument)
			shortcodes.DELETE("/:id", shortCodeHandler.DeleteShortCode)
		}

		// Area routes
		areas := v1.Group("/areas")
		{
			areas.GET("", areaHandler.ListAreas)
			areas.POST("", areaHandler.CreateArea)
			areas.POST("/:name/numbers", areaHandler.AppendNumbers)
		}

		// Broadcast routes
		broadcasts := v1.Group("/broadcasts")
		{
			broadcasts.GET("", broadcastHandler.ListBroadcasts)
			broadcasts.POST("", broadcastHandler.SendBroadcast)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
