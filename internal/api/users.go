package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// User represents an editorial user account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
}

// UserInput is the request body for creating or updating a user.
// Password is only sent when set.
type UserInput struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}

// ListUsers returns all users.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.requestJSON(ctx, http.MethodGet, "/api/users/", nil, &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateUser creates a new user.
func (c *Client) CreateUser(ctx context.Context, in UserInput) (*User, error) {
	var created User
	if err := c.requestJSON(ctx, http.MethodPost, "/api/users/", in, &created); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &created, nil
}

// UpdateUser updates an existing user by id.
func (c *Client) UpdateUser(ctx context.Context, id string, in UserInput) (*User, error) {
	var updated User
	path := "/api/users/" + url.PathEscape(id)
	if err := c.requestJSON(ctx, http.MethodPut, path, in, &updated); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &updated, nil
}

// DeleteUser deletes a user by id.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	path := "/api/users/" + url.PathEscape(id)
	if err := c.requestJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
