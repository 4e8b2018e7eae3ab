// Package models defines the console's data types.
package models

// Identity is the minimal descriptor of the signed-in user. It is built
// from the username typed at login, not from server profile data.
type Identity struct {
	Username string `json:"username"`
}
