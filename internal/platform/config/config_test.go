package config_test

import (
	"testing"
	"time"

	"github.com/granaapp/grana-go/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Blank values read as unset, shielding the test from the ambient
	// environment.
	t.Setenv("GRANA_API_URL", "")
	t.Setenv("GRANA_HTTP_TIMEOUT", "")
	t.Setenv("GRANA_SESSION_DB_PATH", "")
	t.Setenv("GRANA_SESSION_NAMESPACE", "")
	t.Setenv("IS_PRODUCTION", "")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3333/api", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "grana", cfg.SessionNamespace)
	assert.NotEmpty(t, cfg.SessionDBPath)
	assert.False(t, cfg.IsProduction)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GRANA_API_URL", "https://api.example.com/v1")
	t.Setenv("GRANA_HTTP_TIMEOUT", "3s")
	t.Setenv("GRANA_SESSION_NAMESPACE", "staging")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/v1", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "staging", cfg.SessionNamespace)
}

func TestLoadConfig_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("GRANA_HTTP_TIMEOUT", "not-a-duration")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}
