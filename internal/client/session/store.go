// Package session holds the bearer credential that proves an authenticated
// session. Get, Set and Clear are the only ways to touch it.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/mhpportal/internal/client/repositories/metadata"
)

// TokenKey is the metadata key the credential is stored under.
const TokenKey = "token"

// Store reads and writes the current credential. An empty string means
// there is no credential. No expiry is evaluated here.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// SQLStore persists the credential in the local metadata table.
type SQLStore struct {
	repo metadata.Repository
}

func NewSQLStore(repo metadata.Repository) *SQLStore {
	return &SQLStore{repo: repo}
}

func (s *SQLStore) Get(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, TokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Set stores token. Setting an empty token is the same as Clear.
func (s *SQLStore) Set(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}
	return s.repo.Set(ctx, TokenKey, []byte(token))
}

func (s *SQLStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, TokenKey)
}

// MemoryStore keeps the credential for the lifetime of the process.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (m *MemoryStore) Get(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStore) Set(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
