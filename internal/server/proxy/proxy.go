// Package proxy implements the local HTTP boundary in front of the
// external customers API.
//
// Every request under /api/customers is forwarded to
// <backend>/Customers[/path] with the caller's Authorization header. The
// backend's status and body are relayed unchanged as JSON; failures on the way are
// answered with a JSON {"error": ...} body so callers never see a bare
// transport error.
package proxy

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/partsadmin/internal/common"
	"github.com/dmitrijs2005/partsadmin/internal/logging"
	"github.com/dmitrijs2005/partsadmin/internal/netx"
	"github.com/gorilla/mux"
)

const (
	MsgAuthRequired = "Authorization header required"
	MsgNoResponse   = "No response from external API"
	MsgInternal     = netx.MsgInternal
)

// pathParam is the route variable holding the remainder after
// /api/customers. It is routing-only and never forwarded as a query key.
const pathParam = "path"

// Handler forwards customer requests to the backend.
type Handler struct {
	backendURL string
	client     *http.Client
	log        logging.Logger
}

// NewHandler builds a Handler for the backend at backendURL, e.g.
// "http://localhost:5189/api". A nil client uses http.DefaultClient; the
// inbound request context bounds every outbound call.
func NewHandler(backendURL string, client *http.Client, log logging.Logger) *Handler {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Handler{
		backendURL: strings.TrimRight(backendURL, "/"),
		client:     client,
		log:        log.With("module", "proxy"),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authorization := r.Header.Get(common.AuthorizationHeader)
	if authorization == "" {
		netx.WriteError(w, http.StatusUnauthorized, MsgAuthRequired)
		return
	}

	target := h.targetURL(r)

	var body io.Reader
	if r.Method != http.MethodGet {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			h.log.Error(ctx, "reading request body", "error", err)
			netx.WriteError(w, http.StatusInternalServerError, MsgInternal)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		h.log.Error(ctx, "building backend request", "target", target, "error", err)
		netx.WriteError(w, http.StatusInternalServerError, MsgInternal)
		return
	}
	req.Header.Set(common.AuthorizationHeader, authorization)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Error(ctx, "backend request failed", "target", target, "error", err)
		netx.WriteError(w, http.StatusBadGateway, MsgNoResponse)
		return
	}
	defer resp.Body.Close()

	h.log.Debug(ctx, "backend responded", "target", target, "status", resp.StatusCode)
	relay(w, resp)
	if _, err := io.Copy(w, resp.Body); err != nil {
		h.log.Warn(ctx, "relaying backend body", "error", err)
	}
}

// targetURL maps the inbound request onto the backend resource. The path
// remainder stays escaped as received.
func (h *Handler) targetURL(r *http.Request) string {
	var sb strings.Builder
	sb.WriteString(h.backendURL)
	sb.WriteString("/Customers")

	if rest := strings.Trim(mux.Vars(r)[pathParam], "/"); rest != "" {
		sb.WriteByte('/')
		sb.WriteString(rest)
	}

	q := r.URL.Query()
	q.Del(pathParam)
	if len(q) > 0 {
		sb.WriteByte('?')
		sb.WriteString(q.Encode())
	}
	return sb.String()
}

// relay copies the backend status. The body is always answered as JSON,
// whatever type the backend declared or net/http sniffed for it.
func relay(w http.ResponseWriter, resp *http.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
}
