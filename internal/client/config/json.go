package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mhpportal/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Only
// non-empty fields are copied into the runtime Config.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	SessionDBPath  string         `json:"session_db_path"`
	DownloadDir    string         `json:"download_dir"`
	LogLevel       string         `json:"log_level"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	Export         struct {
		S3Bucket       string `json:"s3_bucket"`
		S3Region       string `json:"s3_region"`
		S3BaseEndpoint string `json:"s3_base_endpoint"`
		S3AccessKey    string `json:"s3_access_key"`
		S3SecretKey    string `json:"s3_secret_key"`
		S3Prefix       string `json:"s3_prefix"`
	} `json:"export"`
}

// parseJson overlays cfg with values loaded from path. An empty path is a
// no-op. Read or unmarshal errors panic.
func parseJson(cfg *Config, path string) {
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.ServerBaseURL, jc.ServerBaseURL)
	setString(&cfg.SessionDBPath, jc.SessionDBPath)
	setString(&cfg.DownloadDir, jc.DownloadDir)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}

	setString(&cfg.Export.S3Bucket, jc.Export.S3Bucket)
	setString(&cfg.Export.S3Region, jc.Export.S3Region)
	setString(&cfg.Export.S3BaseEndpoint, jc.Export.S3BaseEndpoint)
	setString(&cfg.Export.S3AccessKey, jc.Export.S3AccessKey)
	setString(&cfg.Export.S3SecretKey, jc.Export.S3SecretKey)
	setString(&cfg.Export.S3Prefix, jc.Export.S3Prefix)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
