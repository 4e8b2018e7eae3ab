// Package api contains the console's HTTP clients: the authentication
// client talking to the backend directly and the customers client talking
// to the local proxy.
//
// Both normalize failures the same way. A request that never got a response
// yields an error matching ErrUnreachable; a response outside 2xx yields an
// *HTTPError carrying the status and the server-supplied message, if any.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/partsadmin/internal/common"
)

// ErrUnreachable marks transport failures where no response was received.
var ErrUnreachable = errors.New("server unreachable")

// HTTPError is a response outside the 2xx range.
type HTTPError struct {
	Status int
	// Message is the "message" (or "error") field of a JSON body; empty when
	// the server sent none.
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d", e.Status)
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// MessageOf returns the server-supplied message carried by err, or "".
func MessageOf(err error) string {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Message
	}
	return ""
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func parseErrorBody(b []byte) string {
	var eb errorBody
	if err := json.Unmarshal(b, &eb); err != nil {
		return ""
	}
	if eb.Message != "" {
		return eb.Message
	}
	return eb.Error
}

// transport is the shared request/response plumbing.
type transport struct {
	baseURL string
	http    *http.Client
}

func newTransport(baseURL string, hc *http.Client) transport {
	if hc == nil {
		hc = http.DefaultClient
	}
	return transport{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// do sends the request and decodes a 2xx JSON body into out (when non-nil).
// authorization is sent verbatim when non-empty.
func (t transport) do(ctx context.Context, method, path, authorization string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set(common.AuthorizationHeader, authorization)
	}

	resp, err := t.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{Status: resp.StatusCode, Message: parseErrorBody(raw)}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
