package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/dmitrijs2005/partsadmin/internal/client/api"
	"github.com/dmitrijs2005/partsadmin/internal/client/config"
	"github.com/dmitrijs2005/partsadmin/internal/client/customers"
	"github.com/dmitrijs2005/partsadmin/internal/client/guard"
	"github.com/dmitrijs2005/partsadmin/internal/client/session"
	"github.com/dmitrijs2005/partsadmin/internal/client/store"
	"github.com/dmitrijs2005/partsadmin/internal/logging"
)

const appName = "Parts Admin"

type App struct {
	log      logging.Logger
	db       *sql.DB
	session  *session.Manager
	pipeline *customers.Pipeline
	guard    *guard.Guard
	reader   *bufio.Reader
	out      io.Writer

	unsubscribe func()
}

// NewApp opens the credential store and wires the HTTP clients from c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := store.InitDatabase(ctx, c.StoreDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	log := logging.New(c.LogLevel, "text", os.Stderr)

	hc := &http.Client{Timeout: c.RequestTimeout}

	a := newApp(
		store.NewCredentialStore(db),
		api.NewAuthClient(c.BackendURL, hc),
		api.NewCustomersClient(c.ProxyURL, hc),
		log, os.Stdin, os.Stdout,
	)
	a.db = db
	return a, nil
}

func newApp(st store.Store, auth session.Authenticator, f customers.Fetcher, log logging.Logger, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Nop()
	}
	a := &App{
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
	}
	a.session = session.NewManager(st, auth, log)
	a.pipeline = customers.NewPipeline(f, a.session, log)
	a.guard = guard.New(a.session, guard.NavigatorFunc(a.navigate))
	a.unsubscribe = a.pipeline.Subscribe(a.onView)
	return a
}

// Run restores the session, opens the customers view and serves commands
// until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	fmt.Fprintln(a.out, figure.NewFigure(appName, "cybermedium", true).String())
	fmt.Fprintln(a.out, "Type 'help' for commands.")

	if err := a.session.Restore(ctx); err != nil {
		a.fail("Could not read saved session: %v", err)
	}
	_ = a.Customers(ctx)

	runREPL(ctx, a, a.prompt, a.reader)
	return nil
}

// Close releases the store and detaches listeners.
func (a *App) Close() {
	a.guard.Close()
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.db != nil {
		_ = a.db.Close()
		a.db = nil
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsAuthenticated()
}

func (a *App) prompt() string {
	s := a.session.Snapshot()
	switch {
	case s.IsAuthenticated():
		return fmt.Sprintf("(%s) %s", s.Username(), a.guard.Current())
	case !s.Status.Resolved():
		return "(" + s.Status.String() + ")"
	default:
		return string(a.guard.Current())
	}
}
