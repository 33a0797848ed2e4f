package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestLogin_Success(t *testing.T) {
	var gotAuth []string
	var gotReq LoginRequest
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %s", ct)
		}
		gotAuth = r.Header.Values("Authorization")
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]string{"access_token": "fresh-token"})
	})

	resp, err := client.Login(context.Background(), "editor@lankalive.lk", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if resp.AccessToken != "fresh-token" {
		t.Errorf("expected access token 'fresh-token', got '%s'", resp.AccessToken)
	}
	if gotReq.Email != "editor@lankalive.lk" || gotReq.Password != "secret" {
		t.Errorf("credentials not sent as JSON: %+v", gotReq)
	}
	// no token exists yet, so no Authorization header may be sent
	if len(gotAuth) != 0 {
		t.Errorf("expected no Authorization header on login, got %v", gotAuth)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid credentials"}`))
	})

	_, err := client.Login(context.Background(), "editor@lankalive.lk", "wrong")
	if !errors.Is(err, ErrAuthExpired) {
		t.Fatalf("expected ErrAuthExpired on 401, got %v", err)
	}
}

func TestLogin_DoesNotPersistToken(t *testing.T) {
	client, store, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access_token": "fresh-token"})
	})

	if _, err := client.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// persistence is the caller's explicit follow-up step
	if _, err := store.Load(); err == nil {
		t.Error("login must not save the token itself")
	}
}

func TestDecodeToken(t *testing.T) {
	iat := time.Now().Truncate(time.Second)
	exp := iat.Add(time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user-42",
		"role": "admin",
		"iat":  iat.Unix(),
		"exp":  exp.Unix(),
	})
	signed, err := token.SignedString([]byte("server-side-secret"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}

	claims, err := DecodeToken(signed)
	if err != nil {
		t.Fatalf("failed to decode token: %v", err)
	}
	if claims.Subject != "user-42" {
		t.Errorf("expected subject 'user-42', got '%s'", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Errorf("expected role 'admin', got '%s'", claims.Role)
	}
	if !claims.ExpiresAt.Equal(exp) {
		t.Errorf("expected expiry %v, got %v", exp, claims.ExpiresAt)
	}
}

func TestDecodeToken_Garbage(t *testing.T) {
	if _, err := DecodeToken("not-a-jwt"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}
