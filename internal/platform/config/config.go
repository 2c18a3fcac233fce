package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	APIBaseURL       string
	HTTPTimeout      time.Duration
	SessionDBPath    string
	SessionNamespace string
	IsProduction     bool
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("GRANA_API_URL", "http://localhost:3333/api")
	viper.SetDefault("GRANA_HTTP_TIMEOUT", "15s")
	viper.SetDefault("GRANA_SESSION_DB_PATH", "")
	viper.SetDefault("GRANA_SESSION_NAMESPACE", "grana")
	viper.SetDefault("IS_PRODUCTION", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.APIBaseURL = viper.GetString("GRANA_API_URL")
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:3333/api"
		log.Printf("Warning: GRANA_API_URL not set. Defaulting to %s\n", cfg.APIBaseURL)
	}

	timeoutStr := viper.GetString("GRANA_HTTP_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 15 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for GRANA_HTTP_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.HTTPTimeout = timeout

	cfg.SessionDBPath = viper.GetString("GRANA_SESSION_DB_PATH")
	if cfg.SessionDBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			// Fall back to the working directory when HOME is unavailable.
			home = "."
		}
		cfg.SessionDBPath = filepath.Join(home, ".grana", "session.db")
	}

	cfg.SessionNamespace = viper.GetString("GRANA_SESSION_NAMESPACE")
	if cfg.SessionNamespace == "" {
		cfg.SessionNamespace = "grana"
		log.Printf("Warning: GRANA_SESSION_NAMESPACE not set. Defaulting to %s.\n", cfg.SessionNamespace)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	return cfg, nil
}
