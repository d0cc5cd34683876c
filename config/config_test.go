package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"DATABASE_URL", "DB_CONNECT_TIMEOUT", "SECRET_KEY", "ACCESS_TOKEN_EXPIRE_MINUTES",
	"DEBUG", "API_PREFIX", "SERVER_PORT", "OPENAI_API_KEY", "USE_LOCAL_LLM",
	"LOCAL_LLM_URL", "CORS_ORIGINS", "R2_ACCOUNT_ID", "R2_ACCESS_KEY_ID",
	"R2_SECRET_ACCESS_KEY", "R2_BUCKET_NAME", "R2_PUBLIC_BASE_URL",
}

// clearEnv blanks every key so values from the host don't leak into a test.
// caarlos0/env treats an empty variable as unset and applies the default.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestParse_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "postgres://ffliq_user:ffliq_pass@db:5432/ffliq?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "dev-secret-key", cfg.SecretKey)
	assert.Equal(t, 60, cfg.AccessTokenExpireMinutes)
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL())
	assert.False(t, cfg.Debug)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, 8000, cfg.ServerPort)
	assert.Equal(t, 5*time.Second, cfg.DBConnectTimeout)
	assert.Empty(t, cfg.OpenAIAPIKey)
	assert.True(t, cfg.UseLocalLLM)
	assert.Empty(t, cfg.LocalLLMURL)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:8000"}, cfg.CORSOrigins)
	assert.False(t, cfg.StorageEnabled())
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel())
}

func TestParse_fromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/test")
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	t.Setenv("DEBUG", "true")
	t.Setenv("API_PREFIX", "/v1/")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("USE_LOCAL_LLM", "false")
	t.Setenv("LOCAL_LLM_URL", "http://llm:11434")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("DB_CONNECT_TIMEOUT", "2s")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@localhost:5432/test", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.SecretKey)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL())
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/v1", cfg.APIPrefix)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.False(t, cfg.UseLocalLLM)
	assert.Equal(t, "http://llm:11434", cfg.LocalLLMURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 2*time.Second, cfg.DBConnectTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}

func TestParse_storageEnabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("R2_ACCOUNT_ID", "acc")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_BUCKET_NAME", "bucket")
	t.Setenv("R2_PUBLIC_BASE_URL", "https://cdn.example")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.True(t, cfg.StorageEnabled())
}

func TestParse_malformed(t *testing.T) {
	tests := map[string]struct {
		key   string
		value string
	}{
		"non-integer ttl":       {key: "ACCESS_TOKEN_EXPIRE_MINUTES", value: "soon"},
		"zero ttl":              {key: "ACCESS_TOKEN_EXPIRE_MINUTES", value: "0"},
		"bad debug flag":        {key: "DEBUG", value: "maybe"},
		"bad llm flag":          {key: "USE_LOCAL_LLM", value: "yes please"},
		"prefix without slash":  {key: "API_PREFIX", value: "api"},
		"port out of range":     {key: "SERVER_PORT", value: "70000"},
		"port not a number":     {key: "SERVER_PORT", value: "http"},
		"bad connect timeout":   {key: "DB_CONNECT_TIMEOUT", value: "five"},
		"negative timeout":      {key: "DB_CONNECT_TIMEOUT", value: "-1s"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			cfg, err := Parse()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
