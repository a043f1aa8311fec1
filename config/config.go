package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL     string        `toml:"database_url"`
	JWTSecret       string        `toml:"jwt_secret"`
	JWTExpiration   time.Duration `toml:"-"`
	ServerPort      string        `toml:"server_port"`
	LogLevel        string        `toml:"log_level"`
	LogFormat       string        `toml:"log_format"`
	AttributionMode string        `toml:"attribution_mode"`
	AdminPassword   string        `toml:"admin_password"`

	// JWTExpirationText is the TOML spelling of JWTExpiration, e.g. "12h".
	JWTExpirationText string `toml:"jwt_expiration"`
}

func defaults() *Config {
	return &Config{
		DatabaseURL:     "postgresql://postgres@localhost:5432/assetledger",
		JWTSecret:       "your-super-secret-key-change-in-production",
		JWTExpiration:   24 * time.Hour,
		ServerPort:      "8080",
		LogLevel:        "info",
		LogFormat:       "json",
		AttributionMode: "latest",
		AdminPassword:   "admin",
	}
}

// Load builds the configuration from defaults, then the TOML file named by
// ASSETLEDGER_CONFIG, then environment variables. A .env file in the working
// directory is loaded into the environment first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path := os.Getenv("ASSETLEDGER_CONFIG"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.AttributionMode = getEnv("ATTRIBUTION_MODE", cfg.AttributionMode)
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", cfg.AdminPassword)
	cfg.JWTExpirationText = getEnv("JWT_EXPIRATION", cfg.JWTExpirationText)

	if cfg.JWTExpirationText != "" {
		d, err := time.ParseDuration(cfg.JWTExpirationText)
		if err != nil {
			return nil, fmt.Errorf("invalid jwt expiration %q: %w", cfg.JWTExpirationText, err)
		}
		cfg.JWTExpiration = d
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
