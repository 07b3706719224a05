package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptofolio/cmd/client/cmd/types"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		usr, err := app.Auth.CurrentUser()
		if err != nil {
			return err
		}

		fmt.Printf("%s <%s> role=%s id=%s\n", usr.Name, usr.Email, usr.Role, usr.ID)
		return nil
	},
}
