package commands

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sjwayrhz/Lankalive/internal/session"
)

// withMemoryStore swaps the package-level token store for an in-memory one
// for the duration of a test.
func withMemoryStore(t *testing.T) *session.MemoryStore {
	t.Helper()

	original := tokenStore
	store := session.NewMemoryStore()
	tokenStore = store
	t.Cleanup(func() { tokenStore = original })
	return store
}

// mockBackend serves the login endpoint the way the Lankalive backend does.
func mockBackend(t *testing.T, email, password, token string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Email != email || req.Password != password {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "invalid credentials"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": token})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLoginCommand_Structure(t *testing.T) {
	cmd := NewLoginCmd()

	if cmd.Use != "login" {
		t.Errorf("expected Use to be 'login', got %s", cmd.Use)
	}
	if cmd.Flags().Lookup("email") == nil {
		t.Error("expected --email flag to exist")
	}
	if cmd.Flags().Lookup("password") == nil {
		t.Error("expected --password flag to exist")
	}
}

func TestRunLogin_SavesToken(t *testing.T) {
	store := withMemoryStore(t)
	server := mockBackend(t, "editor@lankalive.lk", "password123", "token-abc")
	t.Setenv("LANKALIVE_API_BASE", server.URL)

	if err := runLogin(context.Background(), "editor@lankalive.lk", "password123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	token, err := store.Load()
	if err != nil {
		t.Fatalf("expected token to be persisted: %v", err)
	}
	if token != "token-abc" {
		t.Errorf("expected 'token-abc', got '%s'", token)
	}
}

func TestRunLogin_InvalidCredentials(t *testing.T) {
	store := withMemoryStore(t)
	server := mockBackend(t, "editor@lankalive.lk", "password123", "token-abc")
	t.Setenv("LANKALIVE_API_BASE", server.URL)

	if err := runLogin(context.Background(), "editor@lankalive.lk", "wrong"); err == nil {
		t.Fatal("expected error for invalid credentials")
	}

	if _, err := store.Load(); err == nil {
		t.Error("no token may be saved after a failed login")
	}
}

func TestRunLogin_MissingEmail(t *testing.T) {
	withMemoryStore(t)
	t.Setenv("LANKALIVE_EMAIL", "")
	t.Setenv("LANKALIVE_PASSWORD", "")

	err := runLogin(context.Background(), "", "password123")
	if err == nil {
		t.Fatal("expected error when email is missing")
	}

	expected := "email is required (use --email flag or LANKALIVE_EMAIL env var)"
	if err.Error() != expected {
		t.Errorf("expected error '%s', got '%s'", expected, err.Error())
	}
}

func TestRunLogin_EnvVarCredentials(t *testing.T) {
	store := withMemoryStore(t)
	server := mockBackend(t, "env@lankalive.lk", "envpass", "env-token")
	t.Setenv("LANKALIVE_API_BASE", server.URL)
	t.Setenv("LANKALIVE_EMAIL", "env@lankalive.lk")
	t.Setenv("LANKALIVE_PASSWORD", "envpass")

	if err := runLogin(context.Background(), "", ""); err != nil {
		t.Fatalf("login with env credentials failed: %v", err)
	}

	if token, _ := store.Load(); token != "env-token" {
		t.Errorf("expected 'env-token', got '%s'", token)
	}
}

func TestLogoutCommand_ClearsToken(t *testing.T) {
	store := withMemoryStore(t)
	store.Save("abc")

	cmd := NewLogoutCmd()
	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if _, err := store.Load(); err == nil {
		t.Error("expected token to be cleared after logout")
	}
}
