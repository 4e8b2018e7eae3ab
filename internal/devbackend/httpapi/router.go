// Package httpapi exposes the development backend over HTTP with the same
// routes and JSON shapes as the external REST API.
package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/partsadmin/internal/devbackend/customers"
	"github.com/dmitrijs2005/partsadmin/internal/devbackend/users"
	"github.com/dmitrijs2005/partsadmin/internal/logging"
	"github.com/dmitrijs2005/partsadmin/internal/netx"
	"github.com/gorilla/mux"
)

// Accounts is the identity side used by the auth handlers and the bearer
// middleware.
type Accounts interface {
	Register(ctx context.Context, username, email, password string) (*users.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, token string) (string, error)
}

// Directory is the customer lookup used by the customer handlers.
type Directory interface {
	All(ctx context.Context) []customers.Customer
	ByState(ctx context.Context, state string) []customers.Customer
	ByCity(ctx context.Context, city string) []customers.Customer
	Get(ctx context.Context, id string) (customers.Customer, error)
}

type Handlers struct {
	accounts  Accounts
	directory Directory
	log       logging.Logger
}

func NewRouter(accounts Accounts, directory Directory, log logging.Logger) *mux.Router {
	if log == nil {
		log = logging.Nop()
	}
	h := &Handlers{accounts: accounts, directory: directory, log: log.With("module", "devbackend")}

	r := mux.NewRouter()
	r.Use(netx.RequestID, netx.AccessLog(log), netx.Recover(log))

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/Auth/register", h.register).Methods(http.MethodPost)
	api.HandleFunc("/Auth/login", h.login).Methods(http.MethodPost)

	api.Handle("/Customers", h.requireBearer(h.listCustomers)).Methods(http.MethodGet)
	api.Handle("/Customers/state/{state}", h.requireBearer(h.customersByState)).Methods(http.MethodGet)
	api.Handle("/Customers/city/{city}", h.requireBearer(h.customersByCity)).Methods(http.MethodGet)
	api.Handle("/Customers/{id}", h.requireBearer(h.getCustomer)).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		netx.WriteError(w, http.StatusNotFound, "Not found")
	})
	return r
}
