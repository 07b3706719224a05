package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptofolio/cmd/client/cmd/format"
	"cryptofolio/cmd/client/cmd/types"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the local session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		if err := app.Auth.Logout(); err != nil {
			return fmt.Errorf("logout failed: %w", err)
		}
		format.Success("Logged out")
		return nil
	},
}
