package config

import (
	"github.com/dmitrijs2005/partsadmin/internal/filex"
	"github.com/dmitrijs2005/partsadmin/internal/flagx"
	"github.com/dmitrijs2005/partsadmin/internal/timex"
)

type FileConfig struct {
	ListenAddr                  string         `json:"listen_addr" yaml:"listen_addr"`
	SecretKey                   string         `json:"secret_key" yaml:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration" yaml:"access_token_validity_duration"`
	SeedFile                    string         `json:"seed_file" yaml:"seed_file"`
	LogLevel                    string         `json:"log_level" yaml:"log_level"`
	LogFormat                   string         `json:"log_format" yaml:"log_format"`
}

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
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.SeedFile != "" {
		config.SeedFile = c.SeedFile
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.LogFormat != "" {
		config.LogFormat = c.LogFormat
	}
}
