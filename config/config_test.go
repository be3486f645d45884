package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  http:\n    port: 9999\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9999, cfg.HTTP.Port)
	require.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	require.Equal(t, 3306, cfg.DB.Port)
	require.Equal(t, "park_manager", cfg.DB.Name)
	require.Equal(t, "dev-secret", cfg.JWT.Secret)
	require.Equal(t, 60, cfg.JWT.ExpMin)
	require.Equal(t, 120, cfg.Redis.PresenceTTL)
}

func TestLoadReadsFullConfig(t *testing.T) {
	raw := `server:
  http:
    host: 0.0.0.0
    port: 8081
  db:
    host: db.internal
    user: park
    pass: secret
    name: parks
  jwt:
    secret: super-secret
    issuer: test-issuer
    exp_min: 15
  redis:
    addr: 127.0.0.1:6379
    presence_ttl: 30
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	require.Equal(t, 8081, cfg.HTTP.Port)
	require.Equal(t, "db.internal", cfg.DB.Host)
	require.Equal(t, "parks", cfg.DB.Name)
	require.Equal(t, "super-secret", cfg.JWT.Secret)
	require.Equal(t, "test-issuer", cfg.JWT.Issuer)
	require.Equal(t, 15, cfg.JWT.ExpMin)
	require.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	require.Equal(t, 30, cfg.Redis.PresenceTTL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
