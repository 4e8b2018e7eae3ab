package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/partsadmin/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     listen address (e.g., ":3000")
//	-b string     backend base URL
//	-s duration   shutdown timeout
//	-l string     log level
//	-f string     log format, json or text
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-b", "-s", "-l", "-f"})

	fs := flag.NewFlagSet("proxy", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to listen on")
	fs.StringVar(&config.BackendURL, "b", config.BackendURL, "backend base URL")
	fs.DurationVar(&config.ShutdownTimeout, "s", config.ShutdownTimeout, "graceful shutdown timeout")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
