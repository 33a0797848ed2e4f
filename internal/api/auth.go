package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login authenticates against the backend and returns the new bearer token.
// The token is NOT persisted here; saving it to the session store is the
// caller's explicit follow-up step.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	reqBody := LoginRequest{
		Email:    email,
		Password: password,
	}

	var loginResp LoginResponse
	if err := c.requestJSON(ctx, http.MethodPost, "/api/auth/login", reqBody, &loginResp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if loginResp.AccessToken == "" {
		return nil, fmt.Errorf("login response did not contain a token")
	}
	return &loginResp, nil
}

// TokenClaims is the payload the backend puts into the bearer token.
type TokenClaims struct {
	Subject   string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// DecodeToken extracts the claims from a bearer token without verifying its
// signature. The client holds no signing secret; expiry is still discovered
// reactively through 401 responses, this is display-only.
func DecodeToken(token string) (*TokenClaims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected token claims format")
	}

	out := &TokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
