package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sjwayrhz/Lankalive/internal/api"
)

// NewArticlesCmd creates the articles command group
func NewArticlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "Manage articles",
	}

	cmd.AddCommand(newArticlesListCmd())
	cmd.AddCommand(newArticlesGetCmd())
	cmd.AddCommand(newArticlesCreateCmd())
	cmd.AddCommand(newArticlesUpdateCmd())
	cmd.AddCommand(newArticlesDeleteCmd())

	return cmd
}

func newArticlesListCmd() *cobra.Command {
	var params api.ListArticlesParams
	var highlight bool

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("highlight") {
				params.IsHighlight = &highlight
			}
			return runArticlesList(cmd.Context(), params)
		},
	}

	cmd.Flags().IntVar(&params.Limit, "limit", 20, "Maximum number of articles")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "Listing offset")
	cmd.Flags().StringVar(&params.Category, "category", "", "Filter by category slug")
	cmd.Flags().StringVar(&params.Tag, "tag", "", "Filter by tag slug")
	cmd.Flags().BoolVar(&highlight, "highlight", false, "Filter by highlight flag")
	cmd.Flags().StringVar(&params.Status, "status", "", "Filter by status (draft, published, all)")
	cmd.Flags().StringVar(&params.DateFrom, "from", "", "Published from date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&params.DateTo, "to", "", "Published to date (YYYY-MM-DD)")

	return cmd
}

func runArticlesList(ctx context.Context, params api.ListArticlesParams) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	articles, err := client.ListArticles(ctx, params)
	if err != nil {
		return err
	}

	if len(articles) == 0 {
		fmt.Println("No articles found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tSLUG\tTITLE")
	for _, a := range articles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, a.Status, a.Slug, a.Title)
	}
	return w.Flush()
}

func newArticlesGetCmd() *cobra.Command {
	var byID bool

	cmd := &cobra.Command{
		Use:   "get <slug>",
		Short: "Show one article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var article *api.Article
			if byID {
				article, err = client.GetArticleByID(cmd.Context(), args[0])
			} else {
				article, err = client.GetArticle(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			printArticle(article)
			return nil
		},
	}

	cmd.Flags().BoolVar(&byID, "by-id", false, "Look up by id instead of slug (admin only, works for drafts)")

	return cmd
}

func printArticle(a *api.Article) {
	fmt.Printf("ID:      %s\n", a.ID)
	fmt.Printf("Title:   %s\n", a.Title)
	fmt.Printf("Slug:    %s\n", a.Slug)
	fmt.Printf("Status:  %s\n", a.Status)
	if a.PublishedAt != "" {
		fmt.Printf("Published: %s\n", a.PublishedAt)
	}
	for _, c := range a.Categories {
		fmt.Printf("Category: %s (%s)\n", c.Name, c.Slug)
	}
	for _, tag := range a.Tags {
		fmt.Printf("Tag:      %s (%s)\n", tag.Name, tag.Slug)
	}
	if a.Summary != "" {
		fmt.Printf("\n%s\n", a.Summary)
	}
}

func newArticlesCreateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create -f <file>",
		Short: "Create an article from a YAML or JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var in api.ArticleInput
			if err := readPayloadFile(file, &in); err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			created, err := client.CreateArticle(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created article %s (%s)\n", created.ID, created.Slug)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the article payload (required)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func newArticlesUpdateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "update <id> -f <file>",
		Short: "Update an article from a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in api.ArticleInput
			if err := readPayloadFile(file, &in); err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			if _, err := client.UpdateArticle(cmd.Context(), args[0], in); err != nil {
				return err
			}

			fmt.Printf("✓ Updated article %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the article payload (required)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func newArticlesDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(fmt.Sprintf("Delete article %s", args[0]), yes) {
				fmt.Println("Aborted.")
				return nil
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			if err := client.DeleteArticle(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted article %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
