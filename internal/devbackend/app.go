// Package devbackend runs a local stand-in for the external REST API:
// account registration and login with JWT bearer tokens, and read-only
// customer queries.
package devbackend

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/partsadmin/internal/cryptox"
	"github.com/dmitrijs2005/partsadmin/internal/devbackend/config"
	"github.com/dmitrijs2005/partsadmin/internal/devbackend/customers"
	"github.com/dmitrijs2005/partsadmin/internal/devbackend/httpapi"
	"github.com/dmitrijs2005/partsadmin/internal/devbackend/users"
	"github.com/dmitrijs2005/partsadmin/internal/logging"
	"github.com/dmitrijs2005/partsadmin/internal/netx"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	handler http.Handler
}

func NewApp(c *config.Config) (*App, error) {
	return newApp(c, logging.New(c.LogLevel, c.LogFormat, os.Stdout))
}

func newApp(c *config.Config, logger logging.Logger) (*App, error) {
	seed := customers.DefaultSeed()
	if c.SeedFile != "" {
		var err error
		if seed, err = customers.LoadSeed(c.SeedFile); err != nil {
			return nil, fmt.Errorf("seed load error: %w", err)
		}
	}

	secret := c.SecretKey
	if secret == "" {
		var err error
		if secret, err = cryptox.MakeRandHexString(32); err != nil {
			return nil, fmt.Errorf("secret generation error: %w", err)
		}
		logger.Warn(context.Background(), "no secret key configured, tokens will not survive a restart")
	}

	us := users.NewService(secret, c.AccessTokenValidityDuration)
	repo := customers.NewRepository(seed)

	return &App{config: c, logger: logger, handler: httpapi.NewRouter(us, repo, logger)}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves on the configured address until ctx is cancelled or a
// termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.config.ListenAddr)
	if err != nil {
		return err
	}
	return app.run(ctx, ln)
}

func (app *App) run(ctx context.Context, ln net.Listener) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting development backend...")
	app.initSignalHandler(cancelFunc)

	var (
		wg     sync.WaitGroup
		runErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		srv := &http.Server{Handler: app.handler}
		runErr = netx.Serve(ctx, srv, ln, shutdownTimeout, app.logger)
	}()
	wg.Wait()

	return runErr
}
