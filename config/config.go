package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StorageBackendLocal = "local"
	StorageBackendR2    = "r2"
)

// Config holds every runtime parameter of the application.
type Config struct {
	ServerPort int
	DataDir    string
	UploadDir  string

	JWTSecretKey  string
	AdminEmail    string
	AdminPassword string

	StorageBackend    string
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load reads configuration from environment variables, optionally seeded
// from a .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := getEnvOrDefault("SERVER_PORT", "8000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD environment variables are not set")
	}

	backend := getEnvOrDefault("STORAGE_BACKEND", StorageBackendLocal)
	if backend != StorageBackendLocal && backend != StorageBackendR2 {
		return nil, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageBackendLocal, StorageBackendR2, backend)
	}

	cfg := &Config{
		ServerPort:        port,
		DataDir:           getEnvOrDefault("DATA_DIR", "data"),
		UploadDir:         getEnvOrDefault("UPLOAD_DIR", "uploads/videos"),
		JWTSecretKey:      jwtKey,
		AdminEmail:        adminEmail,
		AdminPassword:     adminPassword,
		StorageBackend:    backend,
		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
