package proxy

import (
	"net/http"

	"github.com/dmitrijs2005/partsadmin/internal/logging"
	"github.com/dmitrijs2005/partsadmin/internal/netx"
	"github.com/gorilla/mux"
)

var forwardedMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
}

// NewRouter mounts h under /api/customers. Route variables keep their
// escaped form so path segments reach the backend as sent.
func NewRouter(h http.Handler, log logging.Logger) *mux.Router {
	if log == nil {
		log = logging.Nop()
	}

	r := mux.NewRouter().UseEncodedPath()
	r.Use(netx.RequestID, netx.AccessLog(log), netx.Recover(log))

	r.Handle("/api/customers", h).Methods(forwardedMethods...)
	r.Handle("/api/customers/{path:.*}", h).Methods(forwardedMethods...)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		netx.WriteError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		netx.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	return r
}
