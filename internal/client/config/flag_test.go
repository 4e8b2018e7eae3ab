package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-b", "http://b/api", "-p", "http://p/api", "-d", "x.db", "-t", "2s", "-l", "debug"},
			expected: &Config{
				BackendURL: "http://b/api", ProxyURL: "http://p/api", StoreDSN: "x.db",
				RequestTimeout: 2 * time.Second, LogLevel: "debug",
			},
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"-x", "1", "-l=error", "--verbose"},
			expected: &Config{LogLevel: "error"},
		},
		{name: "bad duration", args: []string{"-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
				assert.Empty(t, cmp.Diff(cfg, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
			}
		})
	}
}
