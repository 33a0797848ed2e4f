package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sjwayrhz/Lankalive/internal/cli/commands"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "lankalive",
	Short: "Lankalive - Admin CLI for the Lankalive news CMS",
	Long: `Lankalive CLI - Manage articles, categories, tags, media, users and
homepage sections on a Lankalive backend from the terminal.

The backend is selected through LANKALIVE_API_BASE (full base URL) or
LANKALIVE_DOMAIN (https://<domain>); with neither set, requests go to the
serving origin.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lankalive version %s\n", version)
		},
	})

	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewArticlesCmd())
	rootCmd.AddCommand(commands.NewCategoriesCmd())
	rootCmd.AddCommand(commands.NewTagsCmd())
	rootCmd.AddCommand(commands.NewMediaCmd())
	rootCmd.AddCommand(commands.NewUsersCmd())
	rootCmd.AddCommand(commands.NewSectionsCmd())
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
