package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/sjwayrhz/Lankalive/internal/api"
)

func subcommandNames(cmd *cobra.Command) map[string]bool {
	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	return names
}

func TestArticlesCommand_Structure(t *testing.T) {
	cmd := NewArticlesCmd()
	names := subcommandNames(cmd)

	for _, want := range []string{"ls", "get", "create", "update", "delete"} {
		if !names[want] {
			t.Errorf("expected 'articles %s' subcommand to exist", want)
		}
	}
}

func TestArticlesListCommand_Flags(t *testing.T) {
	var ls *cobra.Command
	for _, c := range NewArticlesCmd().Commands() {
		if c.Name() == "ls" {
			ls = c
		}
	}
	if ls == nil {
		t.Fatal("articles ls command not found")
	}

	for _, flag := range []string{"limit", "offset", "category", "tag", "highlight", "status", "from", "to"} {
		if ls.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on 'articles ls'", flag)
		}
	}
}

func TestMediaCommand_Structure(t *testing.T) {
	names := subcommandNames(NewMediaCmd())
	for _, want := range []string{"ls", "upload", "delete"} {
		if !names[want] {
			t.Errorf("expected 'media %s' subcommand to exist", want)
		}
	}
}

func TestSectionsCommand_Structure(t *testing.T) {
	names := subcommandNames(NewSectionsCmd())
	for _, want := range []string{"ls", "create", "update", "delete", "items", "pin", "unpin"} {
		if !names[want] {
			t.Errorf("expected 'sections %s' subcommand to exist", want)
		}
	}
}

func TestReadPayloadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.yaml")
	payload := "title: Flood warning\nslug: flood-warning\nstatus: draft\ncategory_ids:\n  - c1\n"
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatalf("failed to write payload: %v", err)
	}

	var in api.ArticleInput
	if err := readPayloadFile(path, &in); err != nil {
		t.Fatalf("failed to read payload: %v", err)
	}

	if in.Title != "Flood warning" || in.Slug != "flood-warning" || in.Status != "draft" {
		t.Errorf("unexpected decode result: %+v", in)
	}
	if len(in.CategoryIDs) != 1 || in.CategoryIDs[0] != "c1" {
		t.Errorf("expected category ids to decode, got %+v", in.CategoryIDs)
	}
}

func TestReadPayloadFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.json")
	payload := `{"title": "Budget 2026", "is_highlight": true}`
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatalf("failed to write payload: %v", err)
	}

	var in api.ArticleInput
	if err := readPayloadFile(path, &in); err != nil {
		t.Fatalf("failed to read payload: %v", err)
	}

	if in.Title != "Budget 2026" {
		t.Errorf("unexpected decode result: %+v", in)
	}
	if in.IsHighlight == nil || !*in.IsHighlight {
		t.Error("expected is_highlight to decode as true")
	}
}

func TestReadPayloadFile_Missing(t *testing.T) {
	var in api.ArticleInput
	if err := readPayloadFile(filepath.Join(t.TempDir(), "nope.yaml"), &in); err == nil {
		t.Error("expected error for a missing payload file")
	}
}
