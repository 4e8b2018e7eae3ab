package session

import "github.com/dmitrijs2005/partsadmin/internal/client/models"

// Status is the lifecycle position of the session.
//
//	Uninitialized -> Loading -> Authenticated | Unauthenticated
//	Authenticated -> Unauthenticated (Logout)
//	Unauthenticated -> Authenticated (Login)
type Status int

const (
	Uninitialized Status = iota
	Loading
	Authenticated
	Unauthenticated
)

func (s Status) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// Resolved reports whether the initial restore has completed.
func (s Status) Resolved() bool {
	return s == Authenticated || s == Unauthenticated
}

// Snapshot is an immutable copy of the session state.
type Snapshot struct {
	Status Status
	User   *models.Identity
	Token  string
	// Busy is set while a login exchange is in flight.
	Busy bool
}

// IsAuthenticated is true iff both a token and a user are present.
func (s Snapshot) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// Username returns the signed-in username or "".
func (s Snapshot) Username() string {
	if s.User == nil {
		return ""
	}
	return s.User.Username
}
