package main

import (
	"log"
	"os"

	"sms-assistant-backend/internal/answer"
	"sms-assistant-backend/internal/api/routes"
	"sms-assistant-backend/internal/config"
	"sms-assistant-backend/internal/database"
	"sms-assistant-backend/internal/index"
	"sms-assistant-backend/internal/logger"
	"sms-assistant-backend/internal/sms"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "sms-assistant-backend/docs" // This is needed for swag
)

//	@title			SMS Assistant Backend API
//	@version		1.0
//	@description	Backend API for onboarding organization documents into a vector index and answering questions about them over SMS shortcodes.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)
	appLogger := logger.New()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Initialize the vector index with its embedder
	embedder, err := index.NewEmbedder(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize embedder:", err)
	}
	indexService, err := index.NewQdrantService(cfg, embedder, appLogger)
	if err != nil {
		logrus.Fatal("Failed to connect to vector index:", err)
	}

	// Initialize the answer generator
	answerService, err := answer.NewOpenAIService(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize answer service:", err)
	}

	// Initialize the SMS gateway
	gateway, err := sms.NewGateway(cfg, appLogger)
	if err != nil {
		logrus.Fatal("Failed to initialize SMS gateway:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, indexService, answerService, gateway)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
