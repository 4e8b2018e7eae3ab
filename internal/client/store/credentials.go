// Package store is the console's durable credential storage: the bearer
// token and the identity it belongs to, kept in a local SQLite file so a
// session survives restarts.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/partsadmin/internal/client/models"
	"github.com/dmitrijs2005/partsadmin/internal/dbx"
)

// Fixed keys of the persisted pair.
const (
	TokenKey = "authToken"
	UserKey  = "authUser"
)

// Credentials is the persisted pair. Both halves are written and removed
// together.
type Credentials struct {
	Token string
	User  models.Identity
}

// Store is what the session manager needs from durable storage.
type Store interface {
	// Load reports ok=false unless both token and identity are present.
	Load(ctx context.Context) (Credentials, bool, error)
	Save(ctx context.Context, c Credentials) error
	Clear(ctx context.Context) error
}

// CredentialStore implements Store on the credentials table.
type CredentialStore struct {
	db *sql.DB
}

func NewCredentialStore(db *sql.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

func (s *CredentialStore) Load(ctx context.Context) (Credentials, bool, error) {
	repo := NewSQLiteRepository(s.db)

	token, tokenOK, err := repo.Get(ctx, TokenKey)
	if err != nil {
		return Credentials{}, false, err
	}
	rawUser, userOK, err := repo.Get(ctx, UserKey)
	if err != nil {
		return Credentials{}, false, err
	}
	if !tokenOK || !userOK || token == "" {
		return Credentials{}, false, nil
	}

	var user models.Identity
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || user.Username == "" {
		return Credentials{}, false, nil
	}

	return Credentials{Token: token, User: user}, true, nil
}

func (s *CredentialStore) Save(ctx context.Context, c Credentials) error {
	rawUser, err := json.Marshal(c.User)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, TokenKey, c.Token); err != nil {
			return err
		}
		return repo.Set(ctx, UserKey, string(rawUser))
	})
}

func (s *CredentialStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return NewSQLiteRepository(tx).Delete(ctx, TokenKey, UserKey)
	})
}
