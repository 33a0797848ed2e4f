package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sjwayrhz/Lankalive/internal/api"
)

// NewMediaCmd creates the media command group
func NewMediaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Manage media assets",
	}

	cmd.AddCommand(newMediaListCmd())
	cmd.AddCommand(newMediaUploadCmd())
	cmd.AddCommand(newMediaDeleteCmd())

	return cmd
}

func newMediaListCmd() *cobra.Command {
	var params api.ListMediaParams

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List media assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			list, err := client.ListMedia(cmd.Context(), params)
			if err != nil {
				return err
			}

			if len(list.Items) == 0 {
				fmt.Println("No media found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFILE\tURL")
			for _, m := range list.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\n", m.ID, m.FileName, m.URL)
			}
			w.Flush()

			fmt.Printf("\n%d of %d assets\n", len(list.Items), list.Total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&params.Query, "query", "q", "", "Search file names")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "Maximum number of assets")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "Listing offset")

	return cmd
}

func newMediaUploadCmd() *cobra.Command {
	var meta api.MediaMeta

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer file.Close()

			client, err := newClient()
			if err != nil {
				return err
			}

			asset, err := client.UploadMedia(cmd.Context(), filepath.Base(args[0]), file, meta)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Uploaded %s\n", asset.FileName)
			fmt.Printf("  ID:  %s\n", asset.ID)
			fmt.Printf("  URL: %s\n", asset.URL)
			return nil
		},
	}

	cmd.Flags().StringVar(&meta.AltText, "alt", "", "Alt text")
	cmd.Flags().StringVar(&meta.Caption, "caption", "", "Caption")
	cmd.Flags().StringVar(&meta.Credit, "credit", "", "Credit line")

	return cmd
}

func newMediaDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a media asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMediaDelete(cmd, args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runMediaDelete(cmd *cobra.Command, id string, yes bool) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	// Same flow as the admin dashboard: check usage before deleting so an
	// asset still referenced by published articles is never removed blindly.
	usage, err := client.CheckMediaUsage(cmd.Context(), id)
	if err != nil {
		return err
	}

	if !usage.CanDelete {
		fmt.Printf("Asset %s is used by %d published article(s):\n", id, len(usage.Articles))
		for _, a := range usage.Articles {
			fmt.Printf("  - %s (%s)\n", a.Title, a.Slug)
		}
		return fmt.Errorf("refusing to delete media that is still in use")
	}

	if !confirm(fmt.Sprintf("Delete media %s", id), yes) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := client.DeleteMedia(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted media %s\n", id)
	return nil
}
