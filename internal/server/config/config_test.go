package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":3000", c.ListenAddr)
	assert.Equal(t, "http://localhost:5189/api", c.BackendURL)
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
}

func TestLoad_NoArgs(t *testing.T) {
	c := Load(nil)
	require.NotNil(t, c)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, &want, c)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proxy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen_addr: ":4000"
backend_url: "http://backend:5189/api"
shutdown_timeout: "10s"
log_format: text
`), 0o600))

	c := Load([]string{"-c", path, "-a", ":4100", "-x", "ignored"})

	assert.Equal(t, ":4100", c.ListenAddr)
	assert.Equal(t, "http://backend:5189/api", c.BackendURL)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
}

func Test_parseFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("loads json", func(t *testing.T) {
		p := filepath.Join(dir, "proxy.json")
		require.NoError(t, os.WriteFile(p, []byte(`{"backend_url":"http://x/api","shutdown_timeout":"1s"}`), 0o600))

		c := &Config{ListenAddr: ":3000"}
		parseFile(c, []string{"-config", p})
		assert.Equal(t, &Config{ListenAddr: ":3000", BackendURL: "http://x/api", ShutdownTimeout: time.Second}, c)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		p := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(p, []byte(`{ nope`), 0o600))
		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", p}) })
	})
}
