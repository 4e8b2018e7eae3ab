package api

import (
	"context"
	"errors"
	"net/http"
)

// LoginResponse is the body of a successful POST /Auth/login. Token is
// empty when the backend omitted it.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// RegisterRequest is the body of POST /Auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse carries the optional confirmation message.
type RegisterResponse struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthClient talks to the backend authentication endpoints.
type AuthClient struct {
	t transport
}

// NewAuthClient builds a client for baseURL, e.g. "http://localhost:5189/api".
// A nil hc uses http.DefaultClient.
func NewAuthClient(baseURL string, hc *http.Client) *AuthClient {
	return &AuthClient{t: newTransport(baseURL, hc)}
}

// Login posts the credentials. A 2xx body that is not the expected JSON
// object is reported as a response without token, not as an error.
func (c *AuthClient) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.t.do(ctx, http.MethodPost, "/Auth/login", "", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		var he *HTTPError
		if errors.Is(err, ErrUnreachable) || errors.As(err, &he) {
			return nil, err
		}
		return &LoginResponse{}, nil
	}
	return &resp, nil
}

// Register creates an account.
func (c *AuthClient) Register(ctx context.Context, r RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	err := c.t.do(ctx, http.MethodPost, "/Auth/register", "", r, &resp)
	if err != nil {
		var he *HTTPError
		if errors.Is(err, ErrUnreachable) || errors.As(err, &he) {
			return nil, err
		}
		// registered, but the confirmation body was not JSON
		return &RegisterResponse{}, nil
	}
	return &resp, nil
}
