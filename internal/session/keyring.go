package session

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	service = "lankalive"
	// tokenKey is the single fixed key the bearer token lives under,
	// carried over from the web dashboard's storage key.
	tokenKey = "ll_token"
)

// KeyringStore persists the bearer token in the OS keychain/credential
// manager. All processes on the machine share the same token; the last
// Save wins.
type KeyringStore struct{}

func NewKeyringStore() *KeyringStore {
	return &KeyringStore{}
}

func (s *KeyringStore) Save(token string) error {
	if err := keyring.Set(service, tokenKey, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

func (s *KeyringStore) Load() (string, error) {
	token, err := keyring.Get(service, tokenKey)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return token, nil
}

func (s *KeyringStore) Clear() error {
	if err := keyring.Delete(service, tokenKey); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil // already logged out
		}
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
