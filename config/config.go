package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string        `yaml:"port"`
	DatabaseURL   string        `yaml:"database_url"`
	JWTSecret     string        `yaml:"jwt_secret"`
	TokenExpiry   time.Duration `yaml:"token_expiry"`
	AdminUsername string        `yaml:"admin_username"`
	AdminPassword string        `yaml:"admin_password"`
	LogPath       string        `yaml:"log_path"`
	LogLevel      string        `yaml:"log_level"`
	RequireAuth   bool          `yaml:"require_auth"`
}

// Default returns the settings used when neither a config file nor the
// environment provides a value.
func Default() Config {
	return Config{
		Port:          "3000",
		DatabaseURL:   "shop.db",
		TokenExpiry:   24 * time.Hour,
		AdminUsername: "sks_mechanics",
		LogLevel:      "info",
	}
}

// LoadConfig builds the process configuration. Values from the YAML file at
// path (if any) are applied over the defaults, then the environment (and a
// .env file, when present) overrides both.
func LoadConfig(path string) (Config, error) {
	// .env is optional; plain environment variables work without it
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.Port = getEnvOrDefault("PORT", cfg.Port)
	cfg.DatabaseURL = getEnvOrDefault("DATABASE_URL", cfg.DatabaseURL)
	cfg.JWTSecret = getEnvOrDefault("JWT_SECRET", cfg.JWTSecret)
	cfg.AdminUsername = getEnvOrDefault("ADMIN_USERNAME", cfg.AdminUsername)
	cfg.AdminPassword = getEnvOrDefault("ADMIN_PASSWORD", cfg.AdminPassword)
	cfg.LogPath = getEnvOrDefault("LOG_PATH", cfg.LogPath)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)

	if v := os.Getenv("TOKEN_EXPIRY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TOKEN_EXPIRY %q: %w", v, err)
		}
		cfg.TokenExpiry = d
	}
	if v := os.Getenv("REQUIRE_AUTH"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REQUIRE_AUTH %q: %w", v, err)
		}
		cfg.RequireAuth = b
	}

	if cfg.RequireAuth && cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required when REQUIRE_AUTH is set")
	}

	return cfg, nil
}

// RequireAdminPassword fails when no admin password was configured.
func (c Config) RequireAdminPassword() error {
	if c.AdminPassword == "" {
		return fmt.Errorf("environment variable ADMIN_PASSWORD is required")
	}
	return nil
}
