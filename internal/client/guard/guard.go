// Package guard decides whether a console view may be shown for the current
// session state.
//
// Decide is a pure function of session status and target route. Guard binds
// it to a live session and a Navigator, re-evaluating the current route on
// every session change so that, for example, a logout on a protected view
// sends the operator back to the login view.
package guard

import (
	"sync"

	"github.com/dmitrijs2005/partsadmin/internal/client/session"
)

// Route names a console view.
type Route string

const (
	RouteLogin          Route = "login"
	RouteRegister       Route = "register"
	RouteCustomers      Route = "customers"
	RouteCustomerDetail Route = "customer"
)

// IsPublic reports whether r renders regardless of authentication.
func IsPublic(r Route) bool {
	return r == RouteLogin || r == RouteRegister
}

// Action is the outcome of a navigation.
type Action int

const (
	// Wait renders a neutral placeholder; the session is still loading.
	Wait Action = iota
	// Render shows the requested view.
	Render
	// Redirect renders nothing and navigates to the login view.
	Redirect
)

func (a Action) String() string {
	switch a {
	case Wait:
		return "wait"
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	}
	return "unknown"
}

// Decision is what to do with a navigation to Route.
type Decision struct {
	Action Action
	Route  Route
}

// Decide evaluates a navigation to target under status.
func Decide(status session.Status, target Route) Decision {
	switch {
	case !status.Resolved():
		return Decision{Action: Wait, Route: target}
	case IsPublic(target):
		return Decision{Action: Render, Route: target}
	case status == session.Authenticated:
		return Decision{Action: Render, Route: target}
	default:
		return Decision{Action: Redirect, Route: RouteLogin}
	}
}

// Source is the session state the guard watches. Implemented by
// *session.Manager.
type Source interface {
	Snapshot() session.Snapshot
	Subscribe(fn func(session.Snapshot)) (unsubscribe func())
}

// Navigator performs the login redirect.
type Navigator interface {
	Navigate(r Route)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(r Route)

func (f NavigatorFunc) Navigate(r Route) { f(r) }

// Guard tracks the current route and keeps at most one redirect in flight.
type Guard struct {
	src Source
	nav Navigator

	mu          sync.Mutex
	current     Route
	redirecting bool

	unsubscribe func()
}

// New starts watching src. Call Close to stop.
func New(src Source, nav Navigator) *Guard {
	g := &Guard{src: src, nav: nav}
	g.unsubscribe = src.Subscribe(g.onChange)
	return g
}

// Visit records r as the current route and evaluates it.
func (g *Guard) Visit(r Route) Decision {
	g.mu.Lock()
	g.current = r
	if r == RouteLogin {
		g.redirecting = false
	}
	g.mu.Unlock()

	return g.evaluate(g.src.Snapshot().Status, r)
}

// Current returns the last visited route, or "" before the first visit.
func (g *Guard) Current() Route {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Close stops watching the session.
func (g *Guard) Close() {
	if g.unsubscribe != nil {
		g.unsubscribe()
	}
}

func (g *Guard) onChange(s session.Snapshot) {
	g.mu.Lock()
	r := g.current
	g.mu.Unlock()
	if r == "" {
		return
	}
	g.evaluate(s.Status, r)
}

func (g *Guard) evaluate(status session.Status, r Route) Decision {
	d := Decide(status, r)
	if d.Action != Redirect {
		return d
	}

	g.mu.Lock()
	if g.redirecting || g.current != r {
		g.mu.Unlock()
		return d
	}
	g.redirecting = true
	g.mu.Unlock()

	g.nav.Navigate(RouteLogin)
	return d
}
