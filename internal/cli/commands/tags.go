package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sjwayrhz/Lankalive/internal/api"
)

// NewTagsCmd creates the tags command group
func NewTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage tags",
	}

	cmd.AddCommand(newTagsListCmd())
	cmd.AddCommand(newTagsCreateCmd())
	cmd.AddCommand(newTagsUpdateCmd())
	cmd.AddCommand(newTagsDeleteCmd())

	return cmd
}

func newTagsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			tags, err := client.ListTags(cmd.Context())
			if err != nil {
				return err
			}

			if len(tags) == 0 {
				fmt.Println("No tags found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSLUG\tNAME")
			for _, t := range tags {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Slug, t.Name)
			}
			return w.Flush()
		},
	}
}

func newTagsCreateCmd() *cobra.Command {
	var in api.TagInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			created, err := client.CreateTag(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created tag %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Tag name (required)")
	cmd.Flags().StringVar(&in.Slug, "slug", "", "Tag slug (required)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("slug")

	return cmd
}

func newTagsUpdateCmd() *cobra.Command {
	var in api.TagInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if _, err := client.UpdateTag(cmd.Context(), args[0], in); err != nil {
				return err
			}

			fmt.Printf("✓ Updated tag %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "New tag name")
	cmd.Flags().StringVar(&in.Slug, "slug", "", "New tag slug")

	return cmd
}

func newTagsDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(fmt.Sprintf("Delete tag %s", args[0]), yes) {
				fmt.Println("Aborted.")
				return nil
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			if err := client.DeleteTag(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted tag %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
