// Package session owns the console's authentication state: who is signed
// in, with which bearer token, and whether that is still being determined.
//
// The Manager is the single writer of that state. Everything else reads
// immutable Snapshots or subscribes to changes. Outbound requests take the
// Authorization value from the Manager at call time instead of relying on a
// process-wide default header.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dmitrijs2005/partsadmin/internal/client/api"
	"github.com/dmitrijs2005/partsadmin/internal/client/models"
	"github.com/dmitrijs2005/partsadmin/internal/client/store"
	"github.com/dmitrijs2005/partsadmin/internal/common"
	"github.com/dmitrijs2005/partsadmin/internal/logging"
)

const minPasswordLen = 6

// Authenticator is the backend side of login and registration.
// Implemented by *api.AuthClient.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*api.LoginResponse, error)
	Register(ctx context.Context, r api.RegisterRequest) (*api.RegisterResponse, error)
}

// Manager is safe for concurrent use. Listeners are invoked outside the
// internal lock, in subscription order.
type Manager struct {
	store store.Store
	auth  Authenticator
	log   logging.Logger

	mu     sync.RWMutex
	status Status
	user   *models.Identity
	token  string
	busy   bool

	lmu       sync.Mutex
	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func(Snapshot)
}

func NewManager(st store.Store, auth Authenticator, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	return &Manager{
		store: st,
		auth:  auth,
		log:   log.With("module", "session"),
	}
}

// Snapshot returns the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	s := Snapshot{Status: m.status, Token: m.token, Busy: m.busy}
	if m.user != nil {
		u := *m.user
		s.User = &u
	}
	return s
}

// Authorization returns the header value for outbound requests, or false
// when no session is established.
func (m *Manager) Authorization() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" || m.user == nil {
		return "", false
	}
	return common.BearerValue(m.token), true
}

// Subscribe registers fn for every state change and returns a function
// that removes it.
func (m *Manager) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	m.lmu.Lock()
	m.nextID++
	id := m.nextID
	m.listeners = append(m.listeners, listener{id: id, fn: fn})
	m.lmu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.lmu.Lock()
			defer m.lmu.Unlock()
			for i, l := range m.listeners {
				if l.id == id {
					m.listeners = append(m.listeners[:i:i], m.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

func (m *Manager) publish(s Snapshot) {
	m.lmu.Lock()
	ls := make([]listener, len(m.listeners))
	copy(ls, m.listeners)
	m.lmu.Unlock()

	for _, l := range ls {
		l.fn(s)
	}
}

// update applies fn under the write lock and publishes the result.
func (m *Manager) update(fn func()) Snapshot {
	m.mu.Lock()
	fn()
	s := m.snapshotLocked()
	m.mu.Unlock()

	m.publish(s)
	return s
}

// Restore reads persisted credentials. The session is Authenticated when
// both token and identity were found and Unauthenticated otherwise; a store
// failure is returned after leaving the session Unauthenticated.
func (m *Manager) Restore(ctx context.Context) error {
	m.update(func() { m.status = Loading })

	creds, ok, err := m.store.Load(ctx)

	m.update(func() {
		if err == nil && ok {
			u := creds.User
			m.user, m.token, m.status = &u, creds.Token, Authenticated
			return
		}
		m.user, m.token, m.status = nil, "", Unauthenticated
	})

	if err != nil {
		m.log.Warn(ctx, "restore session", "error", err)
		return fmt.Errorf("restore session: %w", err)
	}
	if ok {
		m.log.Debug(ctx, "session restored", "username", creds.User.Username)
	}
	return nil
}

// Login exchanges the credentials for a token, persists it together with
// the identity and only then marks the session Authenticated. On failure
// the session is left unchanged.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" {
		return newError(KindInvalidInput, MsgUsernameRequired, nil)
	}
	if password == "" {
		return newError(KindInvalidInput, MsgPasswordRequired, nil)
	}

	m.mu.Lock()
	if m.busy {
		m.mu.Unlock()
		return newError(KindBusy, ErrBusy.Error(), nil)
	}
	m.busy = true
	s := m.snapshotLocked()
	m.mu.Unlock()
	m.publish(s)

	var user *models.Identity
	var token string
	err := m.login(ctx, username, password, &user, &token)

	m.update(func() {
		m.busy = false
		if err == nil {
			m.user, m.token, m.status = user, token, Authenticated
		}
	})

	if err != nil {
		m.log.Info(ctx, "login failed", "username", username, "error", err)
		return err
	}
	m.log.Info(ctx, "login succeeded", "username", username)
	return nil
}

func (m *Manager) login(ctx context.Context, username, password string, user **models.Identity, token *string) error {
	resp, err := m.auth.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, api.ErrUnreachable) {
			return newError(KindUnreachable, MsgUnreachable, err)
		}
		msg := api.MessageOf(err)
		if msg == "" {
			msg = MsgLoginFailed
		}
		return newError(KindAuthRejected, msg, err)
	}
	if resp == nil || resp.Token == "" {
		return newError(KindMissingToken, MsgMissingToken, nil)
	}

	id := models.Identity{Username: username}
	if err := m.store.Save(ctx, store.Credentials{Token: resp.Token, User: id}); err != nil {
		return newError(KindStore, MsgSaveFailed, err)
	}

	*user, *token = &id, resp.Token
	return nil
}

// Logout forgets the session. Memory is cleared first so no further request
// carries the token even if removing the persisted copy fails; that failure
// is still returned.
func (m *Manager) Logout(ctx context.Context) error {
	m.update(func() {
		m.user, m.token, m.status = nil, "", Unauthenticated
	})

	if err := m.store.Clear(ctx); err != nil {
		m.log.Error(ctx, "clear stored credentials", "error", err)
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Register creates an account and returns the confirmation message. The
// session is not touched.
func (m *Manager) Register(ctx context.Context, username, email, password string) (string, error) {
	if err := validateRegistration(username, email, password); err != nil {
		return "", err
	}

	resp, err := m.auth.Register(ctx, api.RegisterRequest{Username: username, Email: email, Password: password})
	if err != nil {
		msg := api.MessageOf(err)
		if msg == "" {
			msg = MsgRegisterFailed
		}
		kind := KindAuthRejected
		if errors.Is(err, api.ErrUnreachable) {
			kind = KindUnreachable
		}
		m.log.Info(ctx, "registration failed", "username", username, "error", err)
		return "", newError(kind, msg, err)
	}

	if resp != nil && resp.Message != "" {
		return resp.Message, nil
	}
	return MsgRegistered, nil
}

func validateRegistration(username, email, password string) error {
	if strings.TrimSpace(username) == "" {
		return newError(KindInvalidInput, MsgUsernameRequired, nil)
	}
	if email == "" {
		return newError(KindInvalidInput, MsgEmailRequired, nil)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return newError(KindInvalidInput, MsgEmailInvalid, err)
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return newError(KindInvalidInput, MsgPasswordTooShort, nil)
	}
	return nil
}
