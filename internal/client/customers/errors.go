package customers

import (
	"github.com/dmitrijs2005/partsadmin/internal/client/api"
)

// Generic fetch failure messages, used when the backend sent none.
const (
	MsgFetchAll     = "Failed to fetch customers"
	MsgFetchByState = "Failed to fetch customers by state"
	MsgFetchByCity  = "Failed to fetch customers by city"
	MsgFetchDetail  = "Failed to fetch customer details"
)

// FetchError is a failed fetch. Message is what the operator sees.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string { return e.Message }

func (e *FetchError) Unwrap() error { return e.Err }

func fetchError(err error, fallback string) *FetchError {
	msg := api.MessageOf(err)
	if msg == "" {
		msg = fallback
	}
	return &FetchError{Message: msg, Err: err}
}
