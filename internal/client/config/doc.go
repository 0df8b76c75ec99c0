// Package config loads runtime configuration for the portal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables (MHP_*), with a .env file in the working
//     directory loaded first when present.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the reporting API
//	-s string   path of the SQLite session file
//	-d string   directory for downloaded PDFs
//	-l string   log level
//	-t int      request timeout in seconds (0 disables)
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://localhost:8000",
//	  "session_db_path": "session.db",
//	  "download_dir": ".",
//	  "log_level": "info",
//	  "request_timeout": "30s",
//	  "export": {"s3_bucket": "mhp-reports", "s3_region": "us-east-1"}
//	}
//
// Intervals use timex.Duration, so "30s" and integer nanoseconds both work.
package config
