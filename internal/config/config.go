package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings. Built once at startup, read-only after.
type Config struct {
	Port                string
	DatabaseURL         string
	ImageKitPrivateKey  string
	ImageKitPublicKey   string
	ImageKitURLEndpoint string
	CorsAllowedOrigin   string
	StaticDir           string
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         normalizeDatabaseURL(getEnv("DATABASE_URL", "")),
		ImageKitPrivateKey:  getEnv("IMAGEKIT_PRIVATE_KEY", ""),
		ImageKitPublicKey:   getEnv("IMAGEKIT_PUBLIC_KEY", ""),
		ImageKitURLEndpoint: getEnv("IMAGEKIT_URL_ENDPOINT", ""),
		CorsAllowedOrigin:   getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:5173"),
		StaticDir:           getEnv("STATIC_DIR", "frontend/dist"),
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.ImageKitPrivateKey == "" {
		log.Fatal("IMAGEKIT_PRIVATE_KEY is required")
	}

	return cfg
}

// normalizeDatabaseURL strips a "+driver" suffix from the URL scheme, so
// connection strings written for drivers like asyncpg
// (postgresql+asyncpg://...) work with pgx unchanged.
func normalizeDatabaseURL(url string) string {
	scheme, rest, found := strings.Cut(url, "://")
	if !found {
		return url
	}
	if base, _, hasDriver := strings.Cut(scheme, "+"); hasDriver {
		return base + "://" + rest
	}
	return url
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
