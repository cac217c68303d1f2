package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every runtime parameter of the service.
type Config struct {
	ServerPort int

	// StoreBackend selects the persistence layer: "memory" or "postgres".
	StoreBackend    string
	DatabaseURL     string
	StoreQuotaBytes int

	JWTSecretKey      string
	AdminPasswordHash string

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load reads configuration from the environment, optionally seeded from a
// local .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	backend := os.Getenv("STORE_BACKEND")
	if backend == "" {
		backend = "memory"
	}
	if backend != "memory" && backend != "postgres" {
		return nil, fmt.Errorf("STORE_BACKEND must be \"memory\" or \"postgres\", got %q", backend)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if backend == "postgres" && dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	quota := 0
	if quotaStr := os.Getenv("STORE_QUOTA_BYTES"); quotaStr != "" {
		quota, err = strconv.Atoi(quotaStr)
		if err != nil || quota <= 0 {
			return nil, fmt.Errorf("invalid STORE_QUOTA_BYTES environment variable: %q", quotaStr)
		}
	}

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH environment variable is not set")
	}

	cfg := &Config{
		ServerPort:        port,
		StoreBackend:      backend,
		DatabaseURL:       dbURL,
		StoreQuotaBytes:   quota,
		JWTSecretKey:      jwtKey,
		AdminPasswordHash: adminHash,

		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	return cfg, nil
}

// R2Configured reports whether all object storage credentials are present.
func (c *Config) R2Configured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" &&
		c.R2BucketName != "" && c.R2PublicBaseURL != ""
}
