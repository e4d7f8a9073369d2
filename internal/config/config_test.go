package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3001", cfg.ServerPort)
	assert.Equal(t, int32(20), cfg.MaxDBConns)
	assert.Equal(t, 2*time.Second, cfg.DBConnectTimeout)
	assert.Equal(t, 30*time.Second, cfg.DBIdleTimeout)
	assert.Equal(t, 168*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Nil(t, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_DB_CONNS", "5")
	t.Setenv("JWT_EXPIRY_HOURS", "1")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, int32(5), cfg.MaxDBConns)
	assert.Equal(t, time.Hour, cfg.JWTExpiry)
	assert.True(t, cfg.IsProduction())
}

func TestGetEnvIntRejectsGarbage(t *testing.T) {
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg := Load()

	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty means allow all", raw: "", want: nil},
		{name: "single origin", raw: "https://portal.example.com", want: []string{"https://portal.example.com"}},
		{name: "multiple with spaces", raw: "https://a.example.com, https://b.example.com", want: []string{"https://a.example.com", "https://b.example.com"}},
		{name: "trailing comma", raw: "https://a.example.com,", want: []string{"https://a.example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOrigins(tt.raw))
		})
	}
}
