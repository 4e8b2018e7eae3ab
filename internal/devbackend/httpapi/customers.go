package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/partsadmin/internal/common"
	"github.com/dmitrijs2005/partsadmin/internal/netx"
	"github.com/gorilla/mux"
)

func (h *Handlers) listCustomers(w http.ResponseWriter, r *http.Request) {
	h.log.Debug(r.Context(), "listing customers", "username", UsernameFrom(r.Context()))
	netx.WriteJSON(w, http.StatusOK, h.directory.All(r.Context()))
}

func (h *Handlers) customersByState(w http.ResponseWriter, r *http.Request) {
	netx.WriteJSON(w, http.StatusOK, h.directory.ByState(r.Context(), mux.Vars(r)["state"]))
}

func (h *Handlers) customersByCity(w http.ResponseWriter, r *http.Request) {
	netx.WriteJSON(w, http.StatusOK, h.directory.ByCity(r.Context(), mux.Vars(r)["city"]))
}

func (h *Handlers) getCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.directory.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			netx.WriteError(w, http.StatusNotFound, "Customer not found")
			return
		}
		netx.WriteError(w, http.StatusInternalServerError, netx.MsgInternal)
		return
	}
	netx.WriteJSON(w, http.StatusOK, c)
}
