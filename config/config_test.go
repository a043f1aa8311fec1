package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"ASSETLEDGER_CONFIG", "DATABASE_URL", "JWT_SECRET", "SERVER_PORT", "LOG_LEVEL",
		"LOG_FORMAT", "ATTRIBUTION_MODE", "ADMIN_PASSWORD", "JWT_EXPIRATION",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiration)
	assert.Equal(t, "latest", cfg.AttributionMode)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "assetledger.toml")
	content := `
server_port = "9090"
log_format = "console"
attribution_mode = "as_of"
jwt_expiration = "2h"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("ASSETLEDGER_CONFIG", path)
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.ServerPort)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "as_of", cfg.AttributionMode)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiration)
}

func TestLoadRejectsBadExpiration(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_EXPIRATION", "tomorrow")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("ASSETLEDGER_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	_, err := Load()
	assert.Error(t, err)
}
