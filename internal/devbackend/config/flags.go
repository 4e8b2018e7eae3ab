package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/partsadmin/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string     listen address
//	-s string     JWT HMAC secret key
//	-t duration   access token validity
//	-e string     customer seed file
//	-l string     log level
//	-f string     log format
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-t", "-e", "-l", "-f"})

	fs := flag.NewFlagSet("devbackend", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to listen on")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.AccessTokenValidityDuration, "t", config.AccessTokenValidityDuration, "access token validity")
	fs.StringVar(&config.SeedFile, "e", config.SeedFile, "customer seed file")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
