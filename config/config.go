package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the server.
type Config struct {
	Addr            string
	DBPath          string
	SessionLifetime time.Duration
}

// Load reads settings from a .env file (if present) and the environment,
// falling back to development defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment defaults")
	}
	return Config{
		Addr:            getEnv("YATUBE_ADDR", ":8080"),
		DBPath:          getEnv("YATUBE_DB_PATH", "data/badger"),
		SessionLifetime: getDuration("YATUBE_SESSION_LIFETIME", 24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s value %q, using default", key, v)
		return fallback
	}
	return d
}
