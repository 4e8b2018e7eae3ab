// Package server wires and runs the customers proxy: configuration,
// logging, the HTTP router and graceful shutdown on SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/partsadmin/internal/logging"
	"github.com/dmitrijs2005/partsadmin/internal/netx"
	"github.com/dmitrijs2005/partsadmin/internal/server/config"
	"github.com/dmitrijs2005/partsadmin/internal/server/proxy"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	handler http.Handler
}

func NewApp(c *config.Config) *App {
	logger := logging.New(c.LogLevel, c.LogFormat, os.Stdout)
	return newApp(c, logger, http.DefaultClient)
}

func newApp(c *config.Config, logger logging.Logger, client *http.Client) *App {
	h := proxy.NewHandler(c.BackendURL, client, logger)
	return &App{config: c, logger: logger, handler: proxy.NewRouter(h, logger)}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc, ln net.Listener) {
	srv := &http.Server{Handler: app.handler}

	if err := netx.Serve(ctx, srv, ln, app.config.ShutdownTimeout, app.logger); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run listens on the configured address and serves until ctx is cancelled
// or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.config.ListenAddr)
	if err != nil {
		return err
	}
	app.run(ctx, ln)
	return nil
}

func (app *App) run(ctx context.Context, ln net.Listener) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting proxy...", "backend", app.config.BackendURL)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc, ln)
	}()

	wg.Wait()

	app.logger.Info(ctx, "Proxy stopped")
}
