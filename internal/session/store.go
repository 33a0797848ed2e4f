package session

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by Load when no token is stored. Absence of the
// token means "logged out".
var ErrNotFound = errors.New("not authenticated. Please run 'lankalive login' first")

// Store abstracts the persistent token storage so it can be mocked in tests
// and swapped for other backends (in-memory, secure storage) outside the CLI.
// The store holds at most one token; Save overwrites any previous value.
type Store interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// MemoryStore keeps the token in process memory. Used in tests and for
// hosts that deliberately want an unauthenticated client.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", ErrNotFound
	}
	return s.token, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}
