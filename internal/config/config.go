package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime configuration, read from environment variables.
// cmd/api loads a .env file first (godotenv), so local development works
// without exporting anything.
type Config struct {
	Port        string // HTTP listen port
	BaseURL     string // public origin used when building share URLs
	ShareRoot   string // directory beneath which all shared folders live
	StorePath   string // JSON file holding share link records
	DatabaseURL string // optional; switches the link store to SQL
	JWTSecret   string // optional; enables the admin route guard
}

func Load() *Config {
	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		BaseURL:     getenv("BASE_URL", "http://localhost:8080"),
		ShareRoot:   getenv("SHARE_ROOT", "./public"),
		StorePath:   getenv("SHARE_STORE", filepath.Join("data", "share-links.json")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
