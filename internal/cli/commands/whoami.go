package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sjwayrhz/Lankalive/internal/api"
	"github.com/sjwayrhz/Lankalive/internal/session"
)

// NewWhoamiCmd creates the whoami command. It decodes the stored token
// without contacting the backend; an expired token is still shown, since
// expiry is only authoritative on the server.
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami()
		},
	}
}

func runWhoami() error {
	token, err := tokenStore.Load()
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			fmt.Println("Not logged in.")
			return nil
		}
		return err
	}

	claims, err := api.DecodeToken(token)
	if err != nil {
		return fmt.Errorf("stored token is unreadable: %w", err)
	}

	fmt.Printf("User ID: %s\n", claims.Subject)
	if claims.Role != "" {
		fmt.Printf("Role:    %s\n", claims.Role)
	}
	if !claims.ExpiresAt.IsZero() {
		fmt.Printf("Expires: %s", claims.ExpiresAt.Local().Format(time.RFC1123))
		if time.Now().After(claims.ExpiresAt) {
			fmt.Print(" (expired)")
		}
		fmt.Println()
	}
	return nil
}
