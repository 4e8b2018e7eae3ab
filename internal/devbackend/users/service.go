// Package users keeps the development backend's accounts in memory.
package users

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/partsadmin/internal/common"
	"github.com/dmitrijs2005/partsadmin/internal/cryptox"
	"github.com/dmitrijs2005/partsadmin/internal/devbackend/auth"
)

type User struct {
	Username     string
	Email        string
	PasswordHash []byte
}

type Service struct {
	mu                          sync.RWMutex
	users                       map[string]*User
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewService(secretKey string, accessTokenValidityDuration time.Duration) *Service {
	return &Service{
		users:                       make(map[string]*User),
		jwtSecret:                   []byte(secretKey),
		accessTokenValidityDuration: accessTokenValidityDuration,
	}
}

// Register creates an account. Usernames are unique and matched exactly.
func (s *Service) Register(ctx context.Context, username, email, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, common.ErrInvalidInput
	}

	hash, err := cryptox.HashPassword([]byte(password))
	if err != nil {
		return nil, common.ErrInternal
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; ok {
		return nil, common.ErrAlreadyExists
	}
	u := &User{Username: username, Email: email, PasswordHash: hash}
	s.users[username] = u
	return u, nil
}

// Login checks the credentials and issues an access token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	s.mu.RLock()
	u, ok := s.users[strings.TrimSpace(username)]
	s.mu.RUnlock()
	if !ok {
		return "", common.ErrUnauthorized
	}

	if err := cryptox.CheckPassword(u.PasswordHash, []byte(password)); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return "", common.ErrUnauthorized
		}
		return "", common.ErrInternal
	}

	token, err := auth.GenerateToken(u.Username, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}
	return token, nil
}

// Authenticate returns the username a valid access token was issued to.
// Tokens for accounts that no longer exist are rejected.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	username, err := auth.GetUsernameFromToken(token, s.jwtSecret)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	_, ok := s.users[username]
	s.mu.RUnlock()
	if !ok {
		return "", common.ErrInvalidToken
	}
	return username, nil
}
