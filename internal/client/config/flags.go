package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/partsadmin/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Arguments not
// handled here are filtered out with flagx.FilterArgs first.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-b", "-p", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BackendURL, "b", cfg.BackendURL, "authentication backend base URL")
	fs.StringVar(&cfg.ProxyURL, "p", cfg.ProxyURL, "customers proxy base URL")
	fs.StringVar(&cfg.StoreDSN, "d", cfg.StoreDSN, "credential store DSN")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
