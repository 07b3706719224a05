package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cryptofolio/cmd/client/cmd/format"
	"cryptofolio/cmd/client/cmd/types"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the portal",
	Long: `Authenticates against the users collection and stores a local
session for subsequent commands.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		usr, err := app.Auth.Login(ctx, email, string(password))
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		format.Success("Logged in as %s (%s)", usr.Name, usr.Role)
		return nil
	},
}
