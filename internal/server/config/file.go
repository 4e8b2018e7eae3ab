package config

import (
	"github.com/dmitrijs2005/partsadmin/internal/filex"
	"github.com/dmitrijs2005/partsadmin/internal/flagx"
	"github.com/dmitrijs2005/partsadmin/internal/timex"
)

// FileConfig is an intermediate DTO for reading config files. Durations
// accept both "5s" strings and integer nanoseconds.
type FileConfig struct {
	ListenAddr      string         `json:"listen_addr" yaml:"listen_addr"`
	BackendURL      string         `json:"backend_url" yaml:"backend_url"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel        string         `json:"log_level" yaml:"log_level"`
	LogFormat       string         `json:"log_format" yaml:"log_format"`
}

// parseFile loads the file named by -c/-config into config. Fields absent
// from the file keep their current values.
func parseFile(config *Config, args []string) {
	path := flagx.ConfigFileFrom(args)
	if path == "" {
		return
	}

	c := &FileConfig{}
	if err := filex.Decode(path, c); err != nil {
		panic(err)
	}

	if c.ListenAddr != "" {
		config.ListenAddr = c.ListenAddr
	}
	if c.BackendURL != "" {
		config.BackendURL = c.BackendURL
	}
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.LogFormat != "" {
		config.LogFormat = c.LogFormat
	}
}
