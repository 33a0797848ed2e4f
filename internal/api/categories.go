package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Category represents a navigation category.
type Category struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	OrderIndex int    `json:"order_index,omitempty"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

// CategoryInput is the request body for creating or updating a category.
type CategoryInput struct {
	Name       string `json:"name,omitempty"`
	Slug       string `json:"slug,omitempty"`
	OrderIndex *int   `json:"order_index,omitempty"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

// ListCategories returns all categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var cats []Category
	if err := c.requestJSON(ctx, http.MethodGet, "/api/categories/", nil, &cats); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return cats, nil
}

// GetCategory fetches one category by its slug.
func (c *Client) GetCategory(ctx context.Context, slug string) (*Category, error) {
	var cat Category
	path := "/api/categories/" + url.PathEscape(slug)
	if err := c.requestJSON(ctx, http.MethodGet, path, nil, &cat); err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &cat, nil
}

// CreateCategory creates a new category.
func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	var created Category
	if err := c.requestJSON(ctx, http.MethodPost, "/api/categories/", in, &created); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &created, nil
}

// UpdateCategory updates an existing category by id.
func (c *Client) UpdateCategory(ctx context.Context, id string, in CategoryInput) (*Category, error) {
	var updated Category
	path := "/api/categories/" + url.PathEscape(id)
	if err := c.requestJSON(ctx, http.MethodPut, path, in, &updated); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &updated, nil
}

// DeleteCategory deletes a category by id.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	path := "/api/categories/" + url.PathEscape(id)
	if err := c.requestJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
