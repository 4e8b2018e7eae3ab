package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the console.
type Config struct {
	BackendURL     string
	ProxyURL       string
	StoreDSN       string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendURL = "http://localhost:5189/api"
	c.ProxyURL = "http://localhost:3000/api"
	c.StoreDSN = "partsadmin/console.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig builds the Config from the process arguments. It panics on an
// unreadable config file or malformed flags.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load applies defaults, then the config file named in args, then the flags
// in args.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
