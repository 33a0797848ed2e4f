package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Tag represents an article tag.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// TagInput is the request body for creating or updating a tag.
type TagInput struct {
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// ListTags returns all tags.
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.requestJSON(ctx, http.MethodGet, "/api/tags/", nil, &tags); err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// CreateTag creates a new tag.
func (c *Client) CreateTag(ctx context.Context, in TagInput) (*Tag, error) {
	var created Tag
	if err := c.requestJSON(ctx, http.MethodPost, "/api/tags/", in, &created); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return &created, nil
}

// UpdateTag updates an existing tag by id.
func (c *Client) UpdateTag(ctx context.Context, id string, in TagInput) (*Tag, error) {
	var updated Tag
	path := "/api/tags/" + url.PathEscape(id)
	if err := c.requestJSON(ctx, http.MethodPut, path, in, &updated); err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return &updated, nil
}

// DeleteTag deletes a tag by id.
func (c *Client) DeleteTag(ctx context.Context, id string) error {
	path := "/api/tags/" + url.PathEscape(id)
	if err := c.requestJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}
