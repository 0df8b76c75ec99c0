package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// EnvConfig mirrors the environment surface. Unset variables leave the
// zero value, which parseEnv treats as "keep what we have".
type EnvConfig struct {
	ServerBaseURL  string        `env:"MHP_API_BASE"`
	SessionDBPath  string        `env:"MHP_SESSION_DB"`
	DownloadDir    string        `env:"MHP_DOWNLOAD_DIR"`
	LogLevel       string        `env:"MHP_LOG_LEVEL"`
	RequestTimeout time.Duration `env:"MHP_REQUEST_TIMEOUT"`

	S3Bucket       string `env:"MHP_S3_BUCKET"`
	S3Region       string `env:"MHP_S3_REGION"`
	S3BaseEndpoint string `env:"MHP_S3_ENDPOINT"`
	S3AccessKey    string `env:"MHP_S3_ACCESS_KEY"`
	S3SecretKey    string `env:"MHP_S3_SECRET_KEY"`
	S3Prefix       string `env:"MHP_S3_PREFIX"`
}

// osLookuper is a test seam for the process environment.
var osLookuper = envconfig.OsLookuper

// parseEnv overlays cfg with MHP_* variables resolved through l. Values
// that fail to parse (e.g. a malformed duration) panic.
func parseEnv(cfg *Config, l envconfig.Lookuper) {
	var ec EnvConfig
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &ec,
		Lookuper: l,
	}); err != nil {
		panic(err)
	}

	setString(&cfg.ServerBaseURL, ec.ServerBaseURL)
	setString(&cfg.SessionDBPath, ec.SessionDBPath)
	setString(&cfg.DownloadDir, ec.DownloadDir)
	setString(&cfg.LogLevel, ec.LogLevel)
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}

	setString(&cfg.Export.S3Bucket, ec.S3Bucket)
	setString(&cfg.Export.S3Region, ec.S3Region)
	setString(&cfg.Export.S3BaseEndpoint, ec.S3BaseEndpoint)
	setString(&cfg.Export.S3AccessKey, ec.S3AccessKey)
	setString(&cfg.Export.S3SecretKey, ec.S3SecretKey)
	setString(&cfg.Export.S3Prefix, ec.S3Prefix)
}

// loadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err := godotenv.Load(path); err != nil {
		panic(err)
	}
}
