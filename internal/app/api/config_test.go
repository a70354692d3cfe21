package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("SWAGGER_DISABLED", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, "local", cfg.Environment)
	require.True(t, cfg.SwaggerOn)
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("SWAGGER_DISABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "staging", cfg.Environment)
	require.False(t, cfg.SwaggerOn)
}

func TestLoadConfigRejectsNonNumericPort(t *testing.T) {
	t.Setenv("PORT", "http")
	_, err := LoadConfig()
	require.Error(t, err)
}
