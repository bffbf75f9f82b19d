package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/api", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Contains(t, cfg.DBPath, ".petcare")
	assert.Contains(t, cfg.KeyPath, "device.key")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PETCARE_API_URL", "https://api.petcare.cl/api")
	t.Setenv("PETCARE_TIMEOUT", "5s")
	t.Setenv("PETCARE_DB", "/tmp/other.db")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://api.petcare.cl/api", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
}

func TestLoad_ConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".petcare")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "config.yaml"),
		[]byte("api_url: https://staging.petcare.cl/api\ntimeout: 10s\n"),
		0o600,
	))

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://staging.petcare.cl/api", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoad_EnvBeatsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PETCARE_API_URL", "https://env.petcare.cl/api")

	configDir := filepath.Join(home, ".petcare")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "config.yaml"),
		[]byte("api_url: https://file.petcare.cl/api\n"),
		0o600,
	))

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://env.petcare.cl/api", cfg.BaseURL)
}

func TestLoad_BadConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".petcare")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "config.yaml"),
		[]byte(":: not yaml ::"),
		0o600,
	))

	_, err := Load()

	assert.Error(t, err)
}
