package config

import (
	"log"
	"os"
	"time"
)

// Config holds the handful of settings the dashboard needs.
type Config struct {
	// APIBaseURL is where the pharmacy backend lives, no trailing slash.
	APIBaseURL string
	// HTTPTimeout bounds every single-shot API call.
	HTTPTimeout time.Duration
}

// Load reads configuration from the environment, falling back to the
// defaults the original dashboard hardcoded. godotenv runs in main, so
// a .env file lands here through os.Getenv.
func Load() Config {
	cfg := Config{
		APIBaseURL:  getEnv("PHARMACY_API_URL", "http://localhost:8080"),
		HTTPTimeout: 15 * time.Second,
	}

	if raw := os.Getenv("PHARMACY_HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("WARNING: invalid PHARMACY_HTTP_TIMEOUT %q, keeping %s", raw, cfg.HTTPTimeout)
		} else {
			cfg.HTTPTimeout = d
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
