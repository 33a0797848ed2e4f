package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sjwayrhz/Lankalive/internal/api"
)

// NewCategoriesCmd creates the categories command group
func NewCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
	}

	cmd.AddCommand(newCategoriesListCmd())
	cmd.AddCommand(newCategoriesCreateCmd())
	cmd.AddCommand(newCategoriesUpdateCmd())
	cmd.AddCommand(newCategoriesDeleteCmd())

	return cmd
}

func newCategoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			cats, err := client.ListCategories(cmd.Context())
			if err != nil {
				return err
			}

			if len(cats) == 0 {
				fmt.Println("No categories found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSLUG\tNAME")
			for _, c := range cats {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Slug, c.Name)
			}
			return w.Flush()
		},
	}
}

func newCategoriesCreateCmd() *cobra.Command {
	var in api.CategoryInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			created, err := client.CreateCategory(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created category %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Category name (required)")
	cmd.Flags().StringVar(&in.Slug, "slug", "", "Category slug (required)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("slug")

	return cmd
}

func newCategoriesUpdateCmd() *cobra.Command {
	var in api.CategoryInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if _, err := client.UpdateCategory(cmd.Context(), args[0], in); err != nil {
				return err
			}

			fmt.Printf("✓ Updated category %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "New category name")
	cmd.Flags().StringVar(&in.Slug, "slug", "", "New category slug")

	return cmd
}

func newCategoriesDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(fmt.Sprintf("Delete category %s", args[0]), yes) {
				fmt.Println("Aborted.")
				return nil
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			if err := client.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted category %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
