// Package cli provides the interactive admin console.
//
// It wires configuration, the credential store, the session manager, the
// route guard and the customers pipeline into a small REPL. Every view
// command goes through the guard; when the session is not authenticated the
// guard redirects to the login view instead.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
