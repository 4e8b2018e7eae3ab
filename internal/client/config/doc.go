// Package config loads runtime configuration for the admin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-b string     base URL of the authentication backend
//	-p string     base URL of the local customers proxy
//	-d string     credential store DSN (SQLite file)
//	-t duration   per-request timeout, e.g. 10s
//	-l string     log level (debug, info, warn, error)
//
// # File schema
//
// Durations use timex.Duration, so "10s" and integer nanoseconds both work:
//
//	{
//	  "backend_url": "http://localhost:5189/api",
//	  "proxy_url": "http://localhost:3000/api",
//	  "store_dsn": "partsadmin/console.db",
//	  "request_timeout": "10s",
//	  "log_level": "warn"
//	}
//
// Empty or missing file fields keep the default.
package config
