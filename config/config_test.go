package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "public", cfg.AssetsDir)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.SecureCookies)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("Z3Z_PORT", "8080")
	t.Setenv("Z3Z_DATA_DIR", "/var/lib/z3z")
	t.Setenv("Z3Z_SESSION_TTL", "1h")
	t.Setenv("Z3Z_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/var/lib/z3z", cfg.DataDir)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
}
