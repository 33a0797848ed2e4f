package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sjwayrhz/Lankalive/internal/api"
)

// NewSectionsCmd creates the homepage sections command group
func NewSectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Manage homepage sections and their pinned articles",
	}

	cmd.AddCommand(newSectionsListCmd())
	cmd.AddCommand(newSectionsCreateCmd())
	cmd.AddCommand(newSectionsUpdateCmd())
	cmd.AddCommand(newSectionsDeleteCmd())
	cmd.AddCommand(newSectionsItemsCmd())
	cmd.AddCommand(newSectionsPinCmd())
	cmd.AddCommand(newSectionsUnpinCmd())

	return cmd
}

func newSectionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List homepage sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			sections, err := client.ListSections(cmd.Context())
			if err != nil {
				return err
			}

			if len(sections) == 0 {
				fmt.Println("No sections found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tKEY\tLAYOUT\tTITLE")
			for _, s := range sections {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Key, s.LayoutType, s.Title)
			}
			return w.Flush()
		},
	}
}

func newSectionsCreateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create -f <file>",
		Short: "Create a section from a YAML or JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var in api.HomepageSectionInput
			if err := readPayloadFile(file, &in); err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			created, err := client.CreateSection(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created section %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the section payload (required)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func newSectionsUpdateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "update <id> -f <file>",
		Short: "Update a section from a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in api.HomepageSectionInput
			if err := readPayloadFile(file, &in); err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			if _, err := client.UpdateSection(cmd.Context(), args[0], in); err != nil {
				return err
			}

			fmt.Printf("✓ Updated section %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the section payload (required)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func newSectionsDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(fmt.Sprintf("Delete section %s", args[0]), yes) {
				fmt.Println("Aborted.")
				return nil
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			if err := client.DeleteSection(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted section %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newSectionsItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "items <section-id>",
		Short: "List the articles pinned to a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			items, err := client.ListSectionItems(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if len(items) == 0 {
				fmt.Println("No pinned articles.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tARTICLE\tORDER")
			for _, i := range items {
				fmt.Fprintf(w, "%s\t%s\t%d\n", i.ID, i.ArticleID, i.OrderIndex)
			}
			return w.Flush()
		},
	}
}

func newSectionsPinCmd() *cobra.Command {
	var in api.SectionItemInput

	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Pin an article into a section",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			created, err := client.CreateSectionItem(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Pinned article (item %s)\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.SectionID, "section", "", "Section id (required)")
	cmd.Flags().StringVar(&in.ArticleID, "article", "", "Article id (required)")
	cmd.Flags().IntVar(&in.OrderIndex, "order", 0, "Position within the section")
	cmd.MarkFlagRequired("section")
	cmd.MarkFlagRequired("article")

	return cmd
}

func newSectionsUnpinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpin <item-id>",
		Short: "Remove a pinned article from its section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if err := client.DeleteSectionItem(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Unpinned item %s\n", args[0])
			return nil
		},
	}
}
