package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/partsadmin/internal/common"
	"github.com/dmitrijs2005/partsadmin/internal/netx"
)

type messageBody struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type usernameKey struct{}

// UsernameFrom returns the authenticated username set by requireBearer.
func UsernameFrom(ctx context.Context) string {
	u, _ := ctx.Value(usernameKey{}).(string)
	return u
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		netx.WriteJSON(w, http.StatusBadRequest, messageBody{Message: "Invalid request body"})
		return
	}

	_, err := h.accounts.Register(r.Context(), req.Username, req.Email, req.Password)
	switch {
	case err == nil:
		h.log.Info(r.Context(), "user registered", "username", req.Username)
		netx.WriteJSON(w, http.StatusOK, messageBody{Message: "User registered successfully"})
	case errors.Is(err, common.ErrInvalidInput):
		netx.WriteJSON(w, http.StatusBadRequest, messageBody{Message: "Username, email and password are required"})
	case errors.Is(err, common.ErrAlreadyExists):
		netx.WriteJSON(w, http.StatusConflict, messageBody{Message: "Username already exists"})
	default:
		h.log.Error(r.Context(), "register failed", "error", err)
		netx.WriteJSON(w, http.StatusInternalServerError, messageBody{Message: netx.MsgInternal})
	}
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		netx.WriteJSON(w, http.StatusBadRequest, messageBody{Message: "Invalid request body"})
		return
	}

	token, err := h.accounts.Login(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		netx.WriteJSON(w, http.StatusOK, loginResponse{Token: token, Message: "Login successful"})
	case errors.Is(err, common.ErrUnauthorized):
		netx.WriteJSON(w, http.StatusUnauthorized, messageBody{Message: "Invalid username or password"})
	default:
		h.log.Error(r.Context(), "login failed", "error", err)
		netx.WriteJSON(w, http.StatusInternalServerError, messageBody{Message: netx.MsgInternal})
	}
}

// requireBearer rejects requests without a valid access token.
func (h *Handlers) requireBearer(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := netx.BearerToken(r.Header.Get(common.AuthorizationHeader))
		if err != nil {
			netx.WriteError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		username, err := h.accounts.Authenticate(r.Context(), token)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, common.ErrTokenExpired) {
				msg = "Token expired"
			}
			netx.WriteError(w, http.StatusUnauthorized, msg)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), usernameKey{}, username)))
	})
}
