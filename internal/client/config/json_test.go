package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"api_base_url":    "https://api.example/api",
		"database_path":   "/var/lib/insula.db",
		"storage_key":     "custom.session",
		"request_timeout": "20s",
		"seal_session":    true,
		"key_file":        "/var/lib/insula.key",
		"log_level":       "warn",
	})

	t.Run("loads every field", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, parseJson(cfg, []string{"-config", full}))

		assert.Equal(t, "https://api.example/api", cfg.APIBaseURL)
		assert.Equal(t, "/var/lib/insula.db", cfg.DatabasePath)
		assert.Equal(t, "custom.session", cfg.StorageKey)
		assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
		assert.True(t, cfg.SealSession)
		assert.Equal(t, "/var/lib/insula.key", cfg.KeyFile)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"request_timeout": 2000000000,
		})
		cfg := defaults()
		require.NoError(t, parseJson(cfg, []string{"-c", partial}))

		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "insula.db", cfg.DatabasePath)
	})

	t.Run("no flag means no changes", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "defaults"}
		require.NoError(t, parseJson(cfg, []string{"-u", "x"}))
		assert.Equal(t, "defaults", cfg.APIBaseURL)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		assert.Error(t, parseJson(&Config{}, []string{"-c", bad}))
	})

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, parseJson(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")}))
	})
}
