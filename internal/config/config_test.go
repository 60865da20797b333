package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"themeconf/internal/config"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, config.UnknownRolesAdd, cfg.Resolver.UnknownRoles)
	require.Empty(t, cfg.Resolver.CatalogPath)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, int64(1<<20), cfg.HTTP.MaxBodyBytes)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
	require.False(t, cfg.Database.Enabled)
	require.Equal(t, 5432, cfg.Database.Port)
}

func TestLoadMissingFileReadsEnv(t *testing.T) {
	t.Setenv("RESOLVER_UNKNOWN_ROLES", "reject")
	t.Setenv("HTTP_ADDR", ":9090")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.UnknownRolesReject, cfg.Resolver.UnknownRoles)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
}

func TestLoadFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(`
environment: production
logLevel: debug
resolver:
  unknownRoles: reject
  catalogPath: /etc/themeconf/palettes.json
http:
  addr: ":7000"
  requestTimeout: 3s
`), 0o600))

	cfg, err := config.Load(filename)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, config.UnknownRolesReject, cfg.Resolver.UnknownRoles)
	require.Equal(t, "/etc/themeconf/palettes.json", cfg.Resolver.CatalogPath)
	require.Equal(t, ":7000", cfg.HTTP.Addr)
	require.Equal(t, 3*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
}

func TestLoadInvalidPolicy(t *testing.T) {
	t.Setenv("RESOLVER_UNKNOWN_ROLES", "ignore")

	_, err := config.Load("")
	require.ErrorContains(t, err, `invalid unknown roles policy "ignore"`)
}

func TestLoadInvalidBodyLimit(t *testing.T) {
	t.Setenv("HTTP_MAX_BODY_BYTES", "0")

	_, err := config.Load("")
	require.ErrorContains(t, err, "invalid max body bytes")
}

func TestLoadDatabaseWithoutHost(t *testing.T) {
	t.Setenv("DATABASE_ENABLED", "true")
	t.Setenv("DATABASE_HOST", "")

	_, err := config.Load("")
	require.ErrorContains(t, err, "DATABASE_HOST")
}
