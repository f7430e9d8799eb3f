package config_test

import (
	"os"
	"path/filepath"
	"phishguard/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, config.ModelLinear, cfg.Model.Kind)
	require.Equal(t, 5, cfg.Model.TopFactors)
	require.Equal(t, config.CacheMemory, cfg.Registry.Cache.Backend)
	require.Equal(t, 5*time.Second, cfg.Registry.LookupTimeout)
	require.False(t, cfg.Registry.Offline)
	require.False(t, cfg.Worker.Enabled)
}

func TestLoad_FileValues(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
http:
  addr: ":9000"
  corsOrigins: ["https://app.example.com"]
model:
  kind: remote
  remote:
    endpoint: http://inference:8000
registry:
  lookupTimeout: 2s
  cache:
    backend: postgres
worker:
  enabled: true
`))
	require.NoError(t, err)

	require.Equal(t, ":9000", cfg.HTTP.Addr)
	require.Equal(t, []string{"https://app.example.com"}, cfg.HTTP.CORSOrigins)
	require.Equal(t, config.ModelRemote, cfg.Model.Kind)
	require.Equal(t, "http://inference:8000", cfg.Model.Remote.Endpoint)
	require.Equal(t, 2*time.Second, cfg.Registry.LookupTimeout)
	require.True(t, cfg.Worker.Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown model", body: "model:\n  kind: forest\n"},
		{name: "remote without endpoint", body: "model:\n  kind: remote\n"},
		{name: "unknown cache", body: "registry:\n  cache:\n    backend: memcached\n"},
		{name: "worker without postgres", body: "worker:\n  enabled: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
