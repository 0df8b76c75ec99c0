package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", c.ServerBaseURL)
	assert.Equal(t, "session.db", c.SessionDBPath)
	assert.Equal(t, ".", c.DownloadDir)
	assert.Equal(t, "info", c.LogLevel)
	assert.Zero(t, c.RequestTimeout)
	assert.False(t, c.Export.Enabled())
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	t.Setenv("MHP_API_BASE", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg := LoadConfig([]string{"dashboard", "-a", "http://api.test", "-t", "5"})

	require.NotNil(t, cfg)
	assert.Equal(t, "http://api.test", cfg.ServerBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "session.db", cfg.SessionDBPath)
}

func TestExportConfig_Enabled(t *testing.T) {
	assert.True(t, ExportConfig{S3Bucket: "b"}.Enabled())
	assert.False(t, ExportConfig{S3Region: "us-east-1"}.Enabled())
}
