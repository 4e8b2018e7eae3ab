package session

import (
	"errors"
)

// User-visible messages.
const (
	MsgMissingToken     = "No token received from server"
	MsgLoginFailed      = "Login failed. Please check your credentials."
	MsgUnreachable      = "Login failed. Authentication server is unreachable."
	MsgSaveFailed       = "Login failed. Could not save credentials."
	MsgRegistered       = "Registration successful! You can now login with your credentials."
	MsgRegisterFailed   = "Registration failed. Please try again."
	MsgUsernameRequired = "Username is required"
	MsgPasswordRequired = "Password is required"
	MsgEmailRequired    = "Email Address is required"
	MsgEmailInvalid     = "Please enter a valid email address"
	MsgPasswordTooShort = "Password must be at least 6 characters long"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrAuthRejected = errors.New("authentication rejected")
	ErrMissingToken = errors.New("missing token")
	ErrUnreachable  = errors.New("authentication server unreachable")
	ErrStore        = errors.New("credential store failure")
	ErrBusy         = errors.New("login already in progress")
)

// Kind classifies an Error.
type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindAuthRejected
	KindMissingToken
	KindUnreachable
	KindStore
	KindBusy
)

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidInput:
		return ErrInvalidInput
	case KindAuthRejected:
		return ErrAuthRejected
	case KindMissingToken:
		return ErrMissingToken
	case KindUnreachable:
		return ErrUnreachable
	case KindStore:
		return ErrStore
	case KindBusy:
		return ErrBusy
	}
	return nil
}

func (k Kind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return "unknown"
}

// Error is returned by Login and Register. Error() is the message shown to
// the operator; errors.Is matches the sentinel of its Kind and Unwrap exposes
// the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func newError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}
