package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr string
	// DatabaseURL selects Postgres repositories. Empty keeps everything in memory.
	DatabaseURL string
	JWTSecret   string
	ListingPath string
}

// Load reads a .env file when present, then the environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:        getenv("PLANT_SHOP_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		ListingPath: strings.TrimPrefix(getenv("LISTING_PATH", "shop.html"), "/"),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
