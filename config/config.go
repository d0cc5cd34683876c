package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the application reads at startup.
// It is built once by Load and passed to the components that need it.
type Config struct {
	DatabaseURL      string        `env:"DATABASE_URL" envDefault:"postgres://ffliq_user:ffliq_pass@db:5432/ffliq?sslmode=disable"`
	DBConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`

	SecretKey                string `env:"SECRET_KEY" envDefault:"dev-secret-key"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"60"`

	Debug      bool   `env:"DEBUG" envDefault:"false"`
	APIPrefix  string `env:"API_PREFIX" envDefault:"/api"`
	ServerPort int    `env:"SERVER_PORT" envDefault:"8000"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	UseLocalLLM  bool   `env:"USE_LOCAL_LLM" envDefault:"true"`
	LocalLLMURL  string `env:"LOCAL_LLM_URL"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:8000"`

	R2AccountID       string `env:"R2_ACCOUNT_ID"`
	R2AccessKeyID     string `env:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY"`
	R2BucketName      string `env:"R2_BUCKET_NAME"`
	R2PublicBaseURL   string `env:"R2_PUBLIC_BASE_URL"`
	R2Endpoint        string `env:"R2_ENDPOINT"`
}

// Load reads the configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	return Parse()
}

// Parse reads the configuration from the current process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("DATABASE_URL must not be empty")
	}
	if c.SecretKey == "" {
		return errors.New("SECRET_KEY must not be empty")
	}
	if c.AccessTokenExpireMinutes <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", c.AccessTokenExpireMinutes)
	}
	if !strings.HasPrefix(c.APIPrefix, "/") {
		return fmt.Errorf("API_PREFIX must start with '/', got %q", c.APIPrefix)
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort)
	}
	if c.DBConnectTimeout <= 0 {
		return fmt.Errorf("DB_CONNECT_TIMEOUT must be positive, got %s", c.DBConnectTimeout)
	}

	origins := make([]string, 0, len(c.CORSOrigins))
	for _, o := range c.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.CORSOrigins = origins

	c.APIPrefix = strings.TrimSuffix(c.APIPrefix, "/")
	return nil
}

// AccessTokenTTL is the lifetime of issued access tokens.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// StorageEnabled reports whether every object storage setting is present.
func (c *Config) StorageEnabled() bool {
	return c.R2AccountID != "" &&
		c.R2AccessKeyID != "" &&
		c.R2SecretAccessKey != "" &&
		c.R2BucketName != "" &&
		c.R2PublicBaseURL != ""
}

// LogLevel is Info in debug mode and Warn otherwise.
func (c *Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelInfo
	}
	return slog.LevelWarn
}
