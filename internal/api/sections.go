package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// HomepageSection represents one configurable block on the homepage.
type HomepageSection struct {
	ID         string `json:"id"`
	Key        string `json:"key"`
	Title      string `json:"title,omitempty"`
	LayoutType string `json:"layout_type,omitempty"`
}

// HomepageSectionInput is the request body for creating or updating a section.
type HomepageSectionInput struct {
	Key        string `json:"key,omitempty"`
	Title      string `json:"title,omitempty"`
	LayoutType string `json:"layout_type,omitempty"`
}

// SectionItem pins an article into a homepage section.
type SectionItem struct {
	ID         string `json:"id"`
	SectionID  string `json:"section_id,omitempty"`
	ArticleID  string `json:"article_id"`
	OrderIndex int    `json:"order_index"`
}

// SectionItemInput is the request body for pinning an article to a section.
type SectionItemInput struct {
	SectionID  string `json:"section_id"`
	ArticleID  string `json:"article_id"`
	OrderIndex int    `json:"order_index,omitempty"`
}

// ListSections returns all homepage sections.
func (c *Client) ListSections(ctx context.Context) ([]HomepageSection, error) {
	var sections []HomepageSection
	if err := c.requestJSON(ctx, http.MethodGet, "/api/homepage_sections/", nil, &sections); err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	return sections, nil
}

// CreateSection creates a new homepage section.
func (c *Client) CreateSection(ctx context.Context, in HomepageSectionInput) (*HomepageSection, error) {
	var created HomepageSection
	if err := c.requestJSON(ctx, http.MethodPost, "/api/homepage_sections/", in, &created); err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}
	return &created, nil
}

// UpdateSection updates an existing section by id.
func (c *Client) UpdateSection(ctx context.Context, id string, in HomepageSectionInput) (*HomepageSection, error) {
	var updated HomepageSection
	path := "/api/homepage_sections/" + url.PathEscape(id)
	if err := c.requestJSON(ctx, http.MethodPut, path, in, &updated); err != nil {
		return nil, fmt.Errorf("failed to update section: %w", err)
	}
	return &updated, nil
}

// DeleteSection deletes a section by id.
func (c *Client) DeleteSection(ctx context.Context, id string) error {
	path := "/api/homepage_sections/" + url.PathEscape(id)
	if err := c.requestJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}
	return nil
}

// ListSectionItems returns the articles pinned to a section.
func (c *Client) ListSectionItems(ctx context.Context, sectionID string) ([]SectionItem, error) {
	var items []SectionItem
	path := "/api/homepage_section_items/section/" + url.PathEscape(sectionID)
	if err := c.requestJSON(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, fmt.Errorf("failed to list section items: %w", err)
	}
	return items, nil
}

// CreateSectionItem pins an article into a section.
func (c *Client) CreateSectionItem(ctx context.Context, in SectionItemInput) (*SectionItem, error) {
	var created SectionItem
	if err := c.requestJSON(ctx, http.MethodPost, "/api/homepage_section_items/", in, &created); err != nil {
		return nil, fmt.Errorf("failed to create section item: %w", err)
	}
	return &created, nil
}

// DeleteSectionItem unpins an article from a section.
func (c *Client) DeleteSectionItem(ctx context.Context, id string) error {
	path := "/api/homepage_section_items/" + url.PathEscape(id)
	if err := c.requestJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete section item: %w", err)
	}
	return nil
}
