package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// CategoryRef is the embedded category shape on article payloads.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// TagRef is the embedded tag shape on article payloads.
type TagRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Article represents a published or draft article. List responses omit the
// body and tag fields; detail responses carry everything.
type Article struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Slug              string        `json:"slug"`
	Summary           string        `json:"summary,omitempty"`
	Body              string        `json:"body,omitempty"`
	HeroImageURL      string        `json:"hero_image_url,omitempty"`
	PublishedAt       string        `json:"published_at,omitempty"`
	Status            string        `json:"status"`
	PrimaryCategoryID string        `json:"primary_category_id,omitempty"`
	Categories        []CategoryRef `json:"categories,omitempty"`
	Tags              []TagRef      `json:"tags,omitempty"`
	IsHighlight       bool          `json:"is_highlight,omitempty"`
	IsBreaking        bool          `json:"is_breaking,omitempty"`
	IsFeatured        bool          `json:"is_featured,omitempty"`
}

// ArticleInput is the request body for creating or updating an article.
type ArticleInput struct {
	Title             string   `json:"title,omitempty"`
	Slug              string   `json:"slug,omitempty"`
	Summary           string   `json:"summary,omitempty"`
	Body              string   `json:"body,omitempty"`
	HeroImageURL      string   `json:"hero_image_url,omitempty"`
	PrimaryCategoryID string   `json:"primary_category_id,omitempty"`
	Status            string   `json:"status,omitempty"`
	IsBreaking        *bool    `json:"is_breaking,omitempty"`
	IsHighlight       *bool    `json:"is_highlight,omitempty"`
	IsFeatured        *bool    `json:"is_featured,omitempty"`
	PublishedAt       string   `json:"published_at,omitempty"`
	CategoryIDs       []string `json:"category_ids,omitempty"`
	TagIDs            []string `json:"tag_ids,omitempty"`
}

// ListArticlesParams are the optional list filters. Unset fields are left
// out of the query string entirely. Status "all" asks the backend to skip
// status filtering (admin only); non-admin callers always get published.
type ListArticlesParams struct {
	Limit       int
	Offset      int
	Category    string // category slug
	Tag         string // tag slug
	IsHighlight *bool
	Status      string
	DateFrom    string // YYYY-MM-DD
	DateTo      string // YYYY-MM-DD
}

func (p ListArticlesParams) encode() string {
	limit := p.Limit
	if limit == 0 {
		limit = 20
	}

	v := url.Values{}
	v.Set("limit", strconv.Itoa(limit))
	v.Set("offset", strconv.Itoa(p.Offset))
	if p.Category != "" {
		v.Set("category", p.Category)
	}
	if p.Tag != "" {
		v.Set("tag", p.Tag)
	}
	if p.IsHighlight != nil {
		if *p.IsHighlight {
			v.Set("is_highlight", "1")
		} else {
			v.Set("is_highlight", "0")
		}
	}
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.DateFrom != "" {
		v.Set("dateFrom", p.DateFrom)
	}
	if p.DateTo != "" {
		v.Set("dateTo", p.DateTo)
	}
	return v.Encode()
}

// ListArticles returns articles matching the given filters.
func (c *Client) ListArticles(ctx context.Context, params ListArticlesParams) ([]Article, error) {
	var articles []Article
	path := "/api/articles/?" + params.encode()
	if err := c.requestJSON(ctx, http.MethodGet, path, nil, &articles); err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

// GetArticle fetches one article by its slug.
func (c *Client) GetArticle(ctx context.Context, slug string) (*Article, error) {
	var article Article
	path := "/api/articles/" + url.PathEscape(slug)
	if err := c.requestJSON(ctx, http.MethodGet, path, nil, &article); err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return &article, nil
}

// GetArticleByID fetches one article by its id. Admin-only on the backend;
// used for editing drafts that have no stable slug yet.
func (c *Client) GetArticleByID(ctx context.Context, id string) (*Article, error) {
	var article Article
	path := "/api/articles/by-id/" + url.PathEscape(id)
	if err := c.requestJSON(ctx, http.MethodGet, path, nil, &article); err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return &article, nil
}

// CreateArticle creates a new article and returns its id and slug.
func (c *Client) CreateArticle(ctx context.Context, in ArticleInput) (*Article, error) {
	var created Article
	if err := c.requestJSON(ctx, http.MethodPost, "/api/articles/", in, &created); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	return &created, nil
}

// UpdateArticle applies a partial update to an existing article.
func (c *Client) UpdateArticle(ctx context.Context, id string, in ArticleInput) (*Article, error) {
	var updated Article
	path := "/api/articles/" + url.PathEscape(id)
	if err := c.requestJSON(ctx, http.MethodPut, path, in, &updated); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}
	return &updated, nil
}

// DeleteArticle deletes an article by id.
func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	path := "/api/articles/" + url.PathEscape(id)
	if err := c.requestJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return nil
}
