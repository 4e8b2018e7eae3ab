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
			args: []string{"-a", "127.0.0.1:9090", "-b", "http://backend/api", "-s", "2s", "-l", "debug", "-f", "text"},
			expected: &Config{
				ListenAddr:      "127.0.0.1:9090",
				BackendURL:      "http://backend/api",
				ShutdownTimeout: 2 * time.Second,
				LogLevel:        "debug",
				LogFormat:       "text",
			},
		},
		{
			name:     "unknown flags filtered",
			args:     []string{"-z", "1", "-a", ":1"},
			expected: &Config{ListenAddr: ":1"},
		},
		{
			name:        "bad duration",
			args:        []string{"-s", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config, tt.args) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config, tt.args) })
			}
		})
	}
}
