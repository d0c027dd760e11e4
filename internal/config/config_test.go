package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"api_key": "test-key",
			"database_url": "postgres://localhost/notices",
			"batch_size": 25,
			"workers": 2
		}`), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "test-key", cfg.APIKey)
		assert.Equal(t, "postgres://localhost/notices", cfg.DatabaseURL)
		assert.Equal(t, 25, cfg.BatchSize)
		assert.Equal(t, 2, cfg.Workers)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{BatchSize: 10, Workers: 4}).Validate())
	assert.Error(t, (&Config{BatchSize: -1}).Validate())
	assert.Error(t, (&Config{Workers: -1}).Validate())
}

func TestConfig_MergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "explicit"}
	merged := cfg.MergeWithDefaults(Config{
		APIKey:      "default",
		DatabaseURL: "postgres://localhost/notices",
		BatchSize:   50,
		Workers:     4,
	})

	assert.Equal(t, "explicit", merged.APIKey)
	assert.Equal(t, "postgres://localhost/notices", merged.DatabaseURL)
	assert.Equal(t, 50, merged.BatchSize)
	assert.Equal(t, 4, merged.Workers)
}

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env/db")

	cfg := Config{}
	cfg.FromEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)

	// Explicit values win over the environment.
	cfg = Config{APIKey: "explicit"}
	cfg.FromEnv()
	assert.Equal(t, "explicit", cfg.APIKey)
}
