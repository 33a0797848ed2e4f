package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sjwayrhz/Lankalive/internal/api"
)

// NewUsersCmd creates the users command group
func NewUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage editorial users",
	}

	cmd.AddCommand(newUsersListCmd())
	cmd.AddCommand(newUsersCreateCmd())
	cmd.AddCommand(newUsersUpdateCmd())
	cmd.AddCommand(newUsersDeleteCmd())

	return cmd
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			users, err := client.ListUsers(cmd.Context())
			if err != nil {
				return err
			}

			if len(users) == 0 {
				fmt.Println("No users found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEMAIL\tNAME")
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\n", u.ID, u.Email, u.Name)
			}
			return w.Flush()
		},
	}
}

func newUsersCreateCmd() *cobra.Command {
	var in api.UserInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			created, err := client.CreateUser(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created user %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&in.Email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&in.Password, "password", "", "Initial password (required)")
	cmd.Flags().StringVar(&in.Role, "role", "", "Role (defaults to admin on the backend)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newUsersUpdateCmd() *cobra.Command {
	var in api.UserInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if _, err := client.UpdateUser(cmd.Context(), args[0], in); err != nil {
				return err
			}

			fmt.Printf("✓ Updated user %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "New name")
	cmd.Flags().StringVar(&in.Email, "email", "", "New email")
	cmd.Flags().StringVar(&in.Password, "password", "", "New password")
	cmd.Flags().StringVar(&in.Role, "role", "", "New role")

	return cmd
}

func newUsersDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(fmt.Sprintf("Delete user %s", args[0]), yes) {
				fmt.Println("Aborted.")
				return nil
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			if err := client.DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted user %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
