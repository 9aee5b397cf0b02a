// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	PCOSArtifactDir      string
	MenopauseArtifactDir string
	RecommendTablePath   string
	DatabaseURL          string
	EnableDB             bool
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		PCOSArtifactDir:      getEnv("PCOS_ARTIFACT_DIR", "artifacts/pcos"),
		MenopauseArtifactDir: getEnv("MENOPAUSE_ARTIFACT_DIR", "artifacts/menopause"),
		RecommendTablePath:   os.Getenv("RECOMMENDATION_TABLE"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		EnableDB:             strings.EqualFold(getEnv("ENABLE_DB", "false"), "true"),
	}

	if cfg.EnableDB && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when ENABLE_DB=true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
