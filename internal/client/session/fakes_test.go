package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/partsadmin/internal/client/api"
	"github.com/dmitrijs2005/partsadmin/internal/client/store"
)

type memStore struct {
	mu      sync.Mutex
	creds   *store.Credentials
	loadErr error
	saveErr error
	clrErr  error
	saves   int
	clears  int
}

func (s *memStore) Load(context.Context) (store.Credentials, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return store.Credentials{}, false, s.loadErr
	}
	if s.creds == nil {
		return store.Credentials{}, false, nil
	}
	return *s.creds, true, nil
}

func (s *memStore) Save(_ context.Context, c store.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.creds = &c
	return nil
}

func (s *memStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
	if s.clrErr != nil {
		return s.clrErr
	}
	s.creds = nil
	return nil
}

type fakeAuth struct {
	loginResp *api.LoginResponse
	loginErr  error
	regResp   *api.RegisterResponse
	regErr    error

	// block, when set, is waited on inside Login.
	block   chan struct{}
	entered chan struct{}

	mu        sync.Mutex
	logins    []string
	registers []api.RegisterRequest
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (*api.LoginResponse, error) {
	f.mu.Lock()
	f.logins = append(f.logins, username+":"+password)
	f.mu.Unlock()
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Register(ctx context.Context, r api.RegisterRequest) (*api.RegisterResponse, error) {
	f.mu.Lock()
	f.registers = append(f.registers, r)
	f.mu.Unlock()
	return f.regResp, f.regErr
}

var errDisk = errors.New("disk full")

func unreachable() error {
	return errors.Join(api.ErrUnreachable, errors.New("dial tcp: connection refused"))
}
