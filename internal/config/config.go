package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Vector index (Qdrant) configuration
	QdrantHost   string `mapstructure:"QDRANT_HOST"`
	QdrantPort   int    `mapstructure:"QDRANT_PORT"`
	QdrantAPIKey string `mapstructure:"QDRANT_API_KEY"`
	QdrantUseTLS bool   `mapstructure:"QDRANT_USE_TLS"`

	// Embedding / answer generation configuration
	EmbeddingBaseURL    string `mapstructure:"EMBEDDING_BASE_URL"`
	EmbeddingModel      string `mapstructure:"EMBEDDING_MODEL"`
	EmbeddingDimensions uint64 `mapstructure:"EMBEDDING_DIMENSIONS"`
	OpenAIAPIKey        string `mapstructure:"OPENAI_API_KEY"`
	LLMModel            string `mapstructure:"LLM_MODEL"`

	// SMS gateway (Africa's Talking) configuration
	ATUsername string `mapstructure:"AT_USERNAME"`
	ATAPIKey   string `mapstructure:"AT_API_KEY"`
	ATSender   string `mapstructure:"AT_SENDER"`
	ATBaseURL  string `mapstructure:"AT_BASE_URL"`

	// Router reply overrides
	FallbackMessage     string `mapstructure:"FALLBACK_MESSAGE"`
	RegistrationMessage string `mapstructure:"REGISTRATION_MESSAGE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "sms_assistant")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost", "http://localhost:5173"})

	// Qdrant defaults (gRPC port, not the HTTP REST port)
	viper.SetDefault("QDRANT_HOST", "localhost")
	viper.SetDefault("QDRANT_PORT", 6334)
	viper.SetDefault("QDRANT_API_KEY", "")
	viper.SetDefault("QDRANT_USE_TLS", false)

	// Embedding / LLM defaults
	viper.SetDefault("EMBEDDING_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("EMBEDDING_MODEL", "text-embedding-3-small")
	viper.SetDefault("EMBEDDING_DIMENSIONS", 1536)
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("LLM_MODEL", "gpt-4o-mini")

	// SMS gateway defaults
	viper.SetDefault("AT_USERNAME", "")
	viper.SetDefault("AT_API_KEY", "")
	viper.SetDefault("AT_SENDER", "")
	viper.SetDefault("AT_BASE_URL", "https://api.africastalking.com")

	// Router reply defaults
	viper.SetDefault("FALLBACK_MESSAGE",
		"We are experiencing technical difficulties. Please try again later.")
	viper.SetDefault("REGISTRATION_MESSAGE",
		"This number is not registered for the service. Please contact your local coordinator to register.")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Environment == "production" {
		if config.ATUsername == "" || config.ATAPIKey == "" {
			return fmt.Errorf("AT_USERNAME and AT_API_KEY must be set in production")
		}
		if config.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY must be set in production")
		}
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
