package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config collects everything read from the environment at startup.
type Config struct {
	Port      string
	AWSRegion string
	S3Bucket  string
	JWTSecret string
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	// A missing .env is fine in deployed environments.
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		AWSRegion: getEnv("AWS_REGION", "us-east-1"),
		S3Bucket:  getEnv("S3_BUCKET_NAME", ""),
		JWTSecret: getEnv("JWT_SECRET", ""),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
