package api

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func TestListArticlesParams_Encode(t *testing.T) {
	tests := []struct {
		name     string
		params   ListArticlesParams
		contains []string
		omits    []string
	}{
		{
			name:     "defaults",
			params:   ListArticlesParams{},
			contains: []string{"limit=20", "offset=0"},
			omits:    []string{"category=", "tag=", "is_highlight=", "status=", "dateFrom=", "dateTo="},
		},
		{
			name:     "category and highlight",
			params:   ListArticlesParams{Category: "sports", IsHighlight: boolPtr(true)},
			contains: []string{"category=sports", "is_highlight=1"},
			omits:    []string{"tag=", "status=", "dateFrom=", "dateTo="},
		},
		{
			name:     "highlight false is still sent",
			params:   ListArticlesParams{IsHighlight: boolPtr(false)},
			contains: []string{"is_highlight=0"},
		},
		{
			name:     "full filter set",
			params:   ListArticlesParams{Limit: 5, Offset: 10, Tag: "cricket", Status: "all", DateFrom: "2026-01-01", DateTo: "2026-02-01"},
			contains: []string{"limit=5", "offset=10", "tag=cricket", "status=all", "dateFrom=2026-01-01", "dateTo=2026-02-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.params.encode()
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected query to contain %q, got %q", want, got)
				}
			}
			for _, banned := range tt.omits {
				if strings.Contains(got, banned) {
					t.Errorf("expected query to omit %q, got %q", banned, got)
				}
			}
		})
	}
}

func TestListArticles(t *testing.T) {
	var gotPath, gotQuery string
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"id":"a1","title":"Flood warning","slug":"flood-warning","status":"published","is_highlight":true}]`))
	})

	articles, err := client.ListArticles(context.Background(), ListArticlesParams{Category: "news"})
	if err != nil {
		t.Fatalf("failed to list articles: %v", err)
	}

	if gotPath != "/api/articles/" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if !strings.Contains(gotQuery, "category=news") {
		t.Errorf("expected category filter in query, got %s", gotQuery)
	}
	if len(articles) != 1 || articles[0].Slug != "flood-warning" || !articles[0].IsHighlight {
		t.Errorf("unexpected decode result: %+v", articles)
	}
}

func TestGetArticle_EscapesSlug(t *testing.T) {
	var gotPath string
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"id":"a1","title":"t","slug":"s","status":"draft"}`))
	})

	if _, err := client.GetArticle(context.Background(), "a b/c"); err != nil {
		t.Fatalf("failed to get article: %v", err)
	}
	if strings.Count(gotPath, "/") != 3 {
		t.Errorf("slug must be path-escaped, got %s", gotPath)
	}
}

func TestArticleCRUDVerbs(t *testing.T) {
	var gotMethod, gotPath string
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":"a1","slug":"s","status":"draft","title":"t"}`))
	})

	ctx := context.Background()

	if _, err := client.CreateArticle(ctx, ArticleInput{Title: "t"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/articles/" {
		t.Errorf("create: got %s %s", gotMethod, gotPath)
	}

	if _, err := client.UpdateArticle(ctx, "a1", ArticleInput{Status: "published"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/articles/a1" {
		t.Errorf("update: got %s %s", gotMethod, gotPath)
	}

	if err := client.DeleteArticle(ctx, "a1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/articles/a1" {
		t.Errorf("delete: got %s %s", gotMethod, gotPath)
	}

	if _, err := client.GetArticleByID(ctx, "a1"); err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if gotMethod != http.MethodGet || gotPath != "/api/articles/by-id/a1" {
		t.Errorf("get by id: got %s %s", gotMethod, gotPath)
	}
}
