package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port      string
	DBPath    string
	UploadDir string
	PublicDir string
}

func Load() *Config {
	// A missing .env file is fine; the environment still applies.
	godotenv.Load()

	return &Config{
		Port:      getenv("PORT", "3000"),
		DBPath:    getenv("DB_PATH", "jobs.db"),
		UploadDir: getenv("UPLOAD_DIR", "uploads"),
		PublicDir: getenv("PUBLIC_DIR", "public"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
