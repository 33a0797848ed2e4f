package session

import (
	"errors"
	"testing"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Save("abc"); err != nil {
		t.Fatalf("failed to save token: %v", err)
	}

	token, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load token: %v", err)
	}
	if token != "abc" {
		t.Errorf("expected token 'abc', got '%s'", token)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("failed to clear token: %v", err)
	}

	if _, err := store.Load(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after clear, got %v", err)
	}
}

func TestMemoryStore_EmptyByDefault(t *testing.T) {
	store := NewMemoryStore()

	if _, err := store.Load(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on fresh store, got %v", err)
	}
}

func TestMemoryStore_LastWriteWins(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Save("first"); err != nil {
		t.Fatalf("failed to save token: %v", err)
	}
	if err := store.Save("second"); err != nil {
		t.Fatalf("failed to save token: %v", err)
	}

	token, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load token: %v", err)
	}
	if token != "second" {
		t.Errorf("expected token 'second', got '%s'", token)
	}
}

func TestMemoryStore_ClearIsIdempotent(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Clear(); err != nil {
		t.Errorf("clearing an empty store should not fail, got %v", err)
	}
}
