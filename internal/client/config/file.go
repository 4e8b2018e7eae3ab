package config

import (
	"github.com/dmitrijs2005/partsadmin/internal/filex"
	"github.com/dmitrijs2005/partsadmin/internal/flagx"
	"github.com/dmitrijs2005/partsadmin/internal/timex"
)

// FileConfig is the on-disk shape, JSON or YAML.
type FileConfig struct {
	BackendURL     string         `json:"backend_url" yaml:"backend_url"`
	ProxyURL       string         `json:"proxy_url" yaml:"proxy_url"`
	StoreDSN       string         `json:"store_dsn" yaml:"store_dsn"`
	RequestTimeout timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file given via -c/-config, if any.
// Panics on read or decode errors.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFrom(args)
	if path == "" {
		return
	}

	var fc FileConfig
	if err := filex.Decode(path, &fc); err != nil {
		panic(err)
	}

	if fc.BackendURL != "" {
		cfg.BackendURL = fc.BackendURL
	}
	if fc.ProxyURL != "" {
		cfg.ProxyURL = fc.ProxyURL
	}
	if fc.StoreDSN != "" {
		cfg.StoreDSN = fc.StoreDSN
	}
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
