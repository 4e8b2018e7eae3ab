package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/partsadmin/internal/client/customers"
	"github.com/dmitrijs2005/partsadmin/internal/client/guard"
	"github.com/dmitrijs2005/partsadmin/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// navigate is the guard's redirect target.
func (a *App) navigate(r guard.Route) {
	a.guard.Visit(r)
	if r == guard.RouteLogin {
		a.renderLogin()
	}
}

// enter asks the guard for r and reports whether the view may render.
func (a *App) enter(r guard.Route) bool {
	switch a.guard.Visit(r).Action {
	case guard.Render:
		return true
	case guard.Wait:
		a.info("Loading session...")
	}
	return false
}

// onView shows the loading indicator while a fetch is in flight.
func (a *App) onView(v customers.View) {
	if v.Loading {
		a.log.Debug(context.Background(), "fetching customers", "criteria", describeCriteria(v.Criteria))
		a.info("Loading customers...")
	}
}

// Register prompts for the account fields and creates the account. On
// success the login view is shown.
func (a *App) Register(ctx context.Context) error {
	if !a.enter(guard.RouteRegister) {
		return nil
	}

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	msg, err := a.session.Register(ctx, username, email, string(password))
	if err != nil {
		a.fail("%s", err)
		return err
	}

	a.success("%s", msg)
	a.navigate(guard.RouteLogin)
	return nil
}

// Login prompts for credentials and signs in. On success the customers view
// is opened; an already authenticated session goes there without a prompt.
func (a *App) Login(ctx context.Context) error {
	if !a.enter(guard.RouteLogin) {
		return nil
	}
	if s := a.session.Snapshot(); s.IsAuthenticated() {
		a.info("Already logged in as %s", s.Username())
		return a.Customers(ctx)
	}

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	if err := a.session.Login(ctx, username, string(password)); err != nil {
		a.fail("%s", err)
		return err
	}

	a.success("Logged in as %s", username)
	return a.Customers(ctx)
}

// Logout is local only. The guard moves a protected view to login.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.fail("Logged out, but saved credentials could not be removed: %v", err)
		return err
	}
	a.success("Logged out")
	return nil
}

// Customers opens the list view afresh: every criterion is reset and the
// full collection fetched.
func (a *App) Customers(ctx context.Context) error {
	if !a.enter(guard.RouteCustomers) {
		return nil
	}
	return a.show(ctx, a.pipeline.Clear(ctx))
}

// inList makes sure the list view is current before a filter command.
func (a *App) inList(ctx context.Context) bool {
	if a.guard.Current() == guard.RouteCustomers {
		return a.enter(guard.RouteCustomers)
	}
	if !a.enter(guard.RouteCustomers) {
		return false
	}
	_ = a.show(ctx, a.pipeline.Load(ctx))
	return true
}

func (a *App) Search(ctx context.Context, term string) error {
	if !a.inList(ctx) {
		return nil
	}
	a.pipeline.SetSearchTerm(term)
	return a.show(ctx, nil)
}

func (a *App) Pincode(ctx context.Context, pincode string) error {
	if !a.inList(ctx) {
		return nil
	}
	a.pipeline.SetPincode(pincode)
	return a.show(ctx, nil)
}

func (a *App) State(ctx context.Context, state string) error {
	if !a.inList(ctx) {
		return nil
	}
	state = a.pipeline.Options().ResolveState(state)
	return a.show(ctx, a.pipeline.SelectState(ctx, state))
}

func (a *App) City(ctx context.Context, city string) error {
	if !a.inList(ctx) {
		return nil
	}
	city = a.pipeline.Options().ResolveCity(city)
	return a.show(ctx, a.pipeline.SelectCity(ctx, city))
}

func (a *App) Clear(ctx context.Context) error {
	if !a.inList(ctx) {
		return nil
	}
	return a.show(ctx, a.pipeline.Clear(ctx))
}

func (a *App) Retry(ctx context.Context) error {
	if !a.inList(ctx) {
		return nil
	}
	return a.show(ctx, a.pipeline.Retry(ctx))
}

// Options lists the selectable states, cities and pincodes.
func (a *App) Options(ctx context.Context) error {
	if !a.inList(ctx) {
		return nil
	}
	a.renderOptions(a.pipeline.Options())
	return nil
}

// Show opens the detail view of one customer.
func (a *App) Show(ctx context.Context, id string) error {
	if !a.enter(guard.RouteCustomerDetail) {
		return nil
	}
	c, err := a.pipeline.Detail(ctx, id)
	if err != nil {
		a.fail("Error: %s", err)
		return err
	}
	a.renderDetail(c)
	return nil
}

// Status prints the session state.
func (a *App) Status(ctx context.Context) error {
	s := a.session.Snapshot()
	fmt.Fprintf(a.out, "Session: %s\n", s.Status)
	if s.IsAuthenticated() {
		fmt.Fprintf(a.out, "User:    %s\n", s.Username())
	}
	if r := a.guard.Current(); r != "" {
		fmt.Fprintf(a.out, "View:    %s\n", r)
	}
	return nil
}

// show renders the list view after a pipeline operation. An
// authentication failure goes back through the guard.
func (a *App) show(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrAuthRequired) {
		a.log.Info(ctx, "list view requires authentication")
		a.enter(guard.RouteCustomers)
		return err
	}
	a.renderView(a.pipeline.View())
	return err
}
