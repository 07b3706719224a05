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

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a portal account",
	Long: `Creates a new account with one empty wallet per supported asset
and logs you in.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		fmt.Print("Name: ")
		var name string
		_, _ = fmt.Scanln(&name)

		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		fmt.Print("Repeat password: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("passwords do not match")
		}
		if len(password) < 6 {
			return fmt.Errorf("password must be at least 6 characters")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		usr, err := app.Auth.Register(ctx, name, email, string(password))
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		format.Success("Account created, logged in as %s", usr.Email)
		return nil
	},
}
