package common

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	Blob     BlobConfig
	Scan     ScanConfig
	Export   ExportConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver           string // "postgres" or "sqlite"
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds OCR collaborator configuration
type OCRConfig struct {
	Endpoint string
	APIKey   string
	Language string
	Timeout  time.Duration
}

// BlobConfig holds image CDN configuration
type BlobConfig struct {
	BaseURL   string
	APIKey    string
	APISecret string
	Folder    string
	Timeout   time.Duration
}

// ScanConfig holds scan-session configuration
type ScanConfig struct {
	RuleTablePath    string
	CustomerIDLength int
	Enhance          bool
	ArtifactCacheDir string
}

// ExportConfig holds sync-export configuration
type ExportConfig struct {
	OutputDir string
}

// LoadConfig loads configuration from environment variables.
// A local .env file is applied first, best effort.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Driver:           getEnv("DB_DRIVER", "postgres"),
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			Endpoint: getEnv("OCR_ENDPOINT", ""),
			APIKey:   getEnv("OCR_API_KEY", ""),
			Language: getEnv("OCR_LANGUAGE", "en"),
			Timeout:  getEnvAsDuration("OCR_TIMEOUT", 45*time.Second),
		},
		Blob: BlobConfig{
			BaseURL:   getEnv("BLOB_BASE_URL", ""),
			APIKey:    getEnv("BLOB_API_KEY", ""),
			APISecret: getEnv("BLOB_API_SECRET", ""),
			Folder:    getEnv("BLOB_FOLDER", "scanvault"),
			Timeout:   getEnvAsDuration("BLOB_TIMEOUT", 60*time.Second),
		},
		Scan: ScanConfig{
			RuleTablePath:    getEnv("RULE_TABLE_PATH", ""),
			CustomerIDLength: getEnvAsInt("CUSTOMER_ID_LENGTH", 11),
			Enhance:          getEnvAsBool("SCAN_ENHANCE", false),
			ArtifactCacheDir: getEnv("ARTIFACT_CACHE_DIR", "./tmp"),
		},
		Export: ExportConfig{
			OutputDir: getEnv("EXPORT_OUTPUT_DIR", "./export"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Database.Driver != "postgres" && c.Database.Driver != "sqlite" {
		return NewAppError("CONFIG_ERROR", "DB_DRIVER must be postgres or sqlite", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Scan.CustomerIDLength <= 0 {
		return NewAppError("CONFIG_ERROR", "CUSTOMER_ID_LENGTH must be positive", ErrInvalidInput)
	}
	return nil
}
