package commands

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the Lankalive backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd.Context(), email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set LANKALIVE_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set LANKALIVE_PASSWORD, will prompt if not provided)")

	return cmd
}

func runLogin(ctx context.Context, email, password string) error {
	// Check for environment variables (useful for CI/CD)
	if email == "" {
		email = os.Getenv("LANKALIVE_EMAIL")
	}
	if password == "" {
		password = os.Getenv("LANKALIVE_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or LANKALIVE_EMAIL env var)")
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Println()
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or LANKALIVE_PASSWORD env var)")
		}
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	// Persisting the token is our job, not Login's.
	if err := tokenStore.Save(resp.AccessToken); err != nil {
		return fmt.Errorf("failed to save authentication token: %w", err)
	}

	fmt.Println("✓ Login successful!")
	fmt.Printf("  User: %s\n", email)
	return nil
}
