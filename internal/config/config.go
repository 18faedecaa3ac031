package config

import (
	"errors"
	"os"
)

// Config holds everything the process reads from the environment. Loaded
// once at startup; read-only afterwards.
type Config struct {
	Port            string
	MongoURI        string
	DBName          string
	JWTSignature    string
	StripeSecretKey string
}

// Load reads the configuration from environment variables. MONGODB_URI and
// JWT_SIGNATURE are required; the rest have defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:            getenv("PORT", "5000"),
		MongoURI:        os.Getenv("MONGODB_URI"),
		DBName:          getenv("DB_NAME", "bristoBossDB"),
		JWTSignature:    os.Getenv("JWT_SIGNATURE"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
	}

	if cfg.MongoURI == "" {
		return cfg, errors.New("MONGODB_URI not set")
	}
	if cfg.JWTSignature == "" {
		return cfg, errors.New("JWT_SIGNATURE not set")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
