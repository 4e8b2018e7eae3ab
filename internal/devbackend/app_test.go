package devbackend

import (
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/partsadmin/internal/devbackend/config"
	"github.com/dmitrijs2005/partsadmin/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	return c
}

func TestNewApp_SeedFileErrors(t *testing.T) {
	c := testConfig()
	c.SeedFile = filepath.Join(t.TempDir(), "missing.json")

	_, err := newApp(c, logging.Nop())
	assert.ErrorContains(t, err, "seed load error")
}

func TestApp_RunServesAndStops(t *testing.T) {
	seed := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seed, []byte("- customerId: x1\n  name: Seeded\n"), 0o600))

	c := testConfig()
	c.SeedFile = seed
	app, err := newApp(c, logging.Nop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.run(ctx, ln) }()

	base := "http://" + ln.Addr().String()
	require.Eventually(t, func() bool {
		resp, err := http.Post(base+"/api/Auth/register", "application/json",
			strings.NewReader(`{"username":"alice","email":"a@example.com","password":"secret1"}`))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("backend did not stop")
	}
}
