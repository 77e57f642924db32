package credentials

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/oauth2"
)

var _ Store = (*MemoryStore)(nil)

type MemoryStore struct {
	mu    sync.RWMutex
	creds *Credentials
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context) (*Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.creds == nil {
		return nil, ErrNotFound
	}
	return clone(s.creds), nil
}

func (s *MemoryStore) Set(_ context.Context, creds *Credentials) error {
	if creds == nil || creds.Token == nil {
		return errors.New("credentials must carry a token")
	}

	s.mu.Lock()
	s.creds = clone(creds)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Rotate(_ context.Context, token *oauth2.Token) error {
	if token == nil {
		return errors.New("token must not be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds == nil {
		return ErrNotFound
	}

	next := &Credentials{Token: cloneToken(token), UserID: s.creds.UserID}
	if next.Token.RefreshToken == "" {
		next.Token.RefreshToken = s.creds.RefreshToken()
	}
	s.creds = next
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.creds = nil
	s.mu.Unlock()
	return nil
}
