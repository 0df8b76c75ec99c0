package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Run("set variables override", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()

		parseEnv(cfg, envconfig.MapLookuper(map[string]string{
			"MHP_API_BASE":        "https://portal.example",
			"MHP_REQUEST_TIMEOUT": "45s",
			"MHP_S3_BUCKET":       "archive",
		}))

		assert.Equal(t, "https://portal.example", cfg.ServerBaseURL)
		assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "archive", cfg.Export.S3Bucket)
		assert.Equal(t, "session.db", cfg.SessionDBPath)
	})

	t.Run("unset variables keep values", func(t *testing.T) {
		cfg := &Config{ServerBaseURL: "http://from-json", LogLevel: "debug"}
		parseEnv(cfg, envconfig.MapLookuper(map[string]string{}))
		assert.Equal(t, "http://from-json", cfg.ServerBaseURL)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("malformed duration panics", func(t *testing.T) {
		require.Panics(t, func() {
			parseEnv(&Config{}, envconfig.MapLookuper(map[string]string{"MHP_REQUEST_TIMEOUT": "soon"}))
		})
	})
}

func Test_loadDotEnv(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is ignored", func(t *testing.T) {
		require.NotPanics(t, func() { loadDotEnv(filepath.Join(dir, ".env")) })
	})

	t.Run("file values reach the environment", func(t *testing.T) {
		path := filepath.Join(dir, "test.env")
		require.NoError(t, os.WriteFile(path, []byte("MHP_DOTENV_PROBE=from-file\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("MHP_DOTENV_PROBE") })

		loadDotEnv(path)
		assert.Equal(t, "from-file", os.Getenv("MHP_DOTENV_PROBE"))
	})
}
