package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-test-secret-test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ayushbridge-api", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:3000", cfg.Server.Address())
	assert.Equal(t, 2*time.Hour, cfg.JWT.TokenTTL)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "data/users.json", cfg.Data.UsersPath())
	assert.Equal(t, "data/namaste.json", cfg.Data.DictionaryPath())
	assert.Equal(t, "data/login-transactions.json", cfg.Data.AuditPath())
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-test-secret-test-secret")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("JWT_TOKEN_TTL", "30m")
	t.Setenv("DATA_DIR", "/var/lib/ayushbridge")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWT.TokenTTL)
	assert.Equal(t, "/var/lib/ayushbridge/records.json", cfg.Data.RecordsPath())
}

func TestLoad_ShortSecretRejectedInProduction(t *testing.T) {
	t.Setenv("JWT_SECRET", "short")
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")
}
