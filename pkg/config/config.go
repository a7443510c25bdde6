package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	SessionDuration time.Duration
	AuthRateLimit   string // ulule/limiter format, e.g. "5-M"
	AllowedOrigins  []string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables override .env values.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SESSION_DURATION", "720h") // 30 days
	viper.SetDefault("AUTH_RATE_LIMIT", "5-M")   // 5 requests per minute per IP
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	sessionDurationStr := viper.GetString("SESSION_DURATION")
	sessionDuration, err := time.ParseDuration(sessionDurationStr)
	if err != nil {
		sessionDuration = time.Hour * 24 * 30
		log.Printf("Warning: Invalid value for SESSION_DURATION ('%s'). Defaulting to %s.\n", sessionDurationStr, sessionDuration.String())
	}
	cfg.SessionDuration = sessionDuration

	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")
	cfg.AllowedOrigins = strings.Split(viper.GetString("ALLOWED_ORIGINS"), ",")

	return cfg, nil
}
