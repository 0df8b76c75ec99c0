package config

import (
	"time"

	"github.com/dmitrijs2005/mhpportal/internal/flagx"
)

// Config holds runtime settings for the portal CLI.
//
// Fields:
//   - ServerBaseURL: scheme://host[:port] of the reporting API.
//   - SessionDBPath: SQLite file holding the persisted credential.
//   - DownloadDir: directory generated PDFs are written to.
//   - LogLevel: debug, info, warn or error.
//   - RequestTimeout: per-request HTTP timeout; zero disables it.
//   - Export: optional S3 archive for generated PDFs.
type Config struct {
	ServerBaseURL  string
	SessionDBPath  string
	DownloadDir    string
	LogLevel       string
	RequestTimeout time.Duration
	Export         ExportConfig
}

// ExportConfig configures the optional S3-compatible PDF archive. The
// archive is enabled only when S3Bucket is non-empty.
type ExportConfig struct {
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
	S3Prefix       string
}

// Enabled reports whether the S3 archive should be wired.
func (e ExportConfig) Enabled() bool {
	return e.S3Bucket != ""
}

// OwnedFlags lists every command-line flag consumed by this package. The
// CLI strips them before handing the remaining args to cobra.
var OwnedFlags = []string{"-a", "-s", "-d", "-l", "-t", "-c", "-config", "--config"}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.SessionDBPath = "session.db"
	c.DownloadDir = "."
	c.LogLevel = "info"
	c.RequestTimeout = 0
	c.Export = ExportConfig{S3Region: "us-east-1", S3Prefix: "reports"}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones. Malformed input panics, matching the
// behaviour of the individual parsers.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, flagx.ConfigFile(args))
	loadDotEnv(".env")
	parseEnv(cfg, osLookuper())
	parseFlags(cfg, args)
	return cfg
}
