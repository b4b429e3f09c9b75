package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Tesseract-Nexus/go-shared/secrets"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Mongo    MongoConfig
	Auth     AuthConfig
	Storage  StorageConfig
	NATS     NATSConfig
	App      AppConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// RedisConfig holds cache configuration. An empty URL disables caching.
type RedisConfig struct {
	URL      string
	Password string
}

// MongoConfig selects the MongoDB activity log backend when URI is set.
type MongoConfig struct {
	URI      string
	Database string
}

// AuthConfig holds admin authentication settings
type AuthConfig struct {
	JWTSecret      string
	TokenTTLHours  int
	AdminEmail     string
	AdminPassword  string
	AdminName      string
	LoginRateLimit int
}

// StorageConfig holds object storage settings
type StorageConfig struct {
	DocumentServiceURL string
	Bucket             string
}

// NATSConfig holds messaging settings. An empty URL disables activity events.
type NATSConfig struct {
	URL string
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name             string
	Environment      string
	LogLevel         string
	StorefrontNumber string
	InvoiceCurrency  string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnvAsInt("DB_PORT", 5432),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", secrets.GetDBPassword()),
			DBName:       getEnv("DB_NAME", "eleman_shoes"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: secrets.GetRedisPassword(),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", ""),
			Database: getEnv("MONGO_DATABASE", "eleman_shoes"),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", secrets.GetJWTSecret()),
			TokenTTLHours:  getEnvAsInt("JWT_TTL_HOURS", 24),
			AdminEmail:     getEnv("ADMIN_EMAIL", ""),
			AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
			AdminName:      getEnv("ADMIN_NAME", "Administrator"),
			LoginRateLimit: getEnvAsInt("LOGIN_RATE_PER_MINUTE", 10),
		},
		Storage: StorageConfig{
			DocumentServiceURL: getEnv("DOCUMENT_SERVICE_URL", "http://document-service:8080"),
			Bucket:             getEnv("STORAGE_BUCKET", "eleman-shoes"),
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", ""),
		},
		App: AppConfig{
			Name:             getEnv("APP_NAME", "eleman-shoes"),
			Environment:      getEnv("APP_ENV", "development"),
			LogLevel:         getEnv("LOG_LEVEL", "info"),
			StorefrontNumber: getEnv("STOREFRONT_WHATSAPP", "213542936103"),
			InvoiceCurrency:  getEnv("INVOICE_CURRENCY", "DZD"),
		},
	}

	if config.Auth.JWTSecret == "" {
		if config.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		config.Auth.JWTSecret = "dev-secret-change-me"
	}

	return config, nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
