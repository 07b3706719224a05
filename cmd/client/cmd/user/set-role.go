package user

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cryptofolio/cmd/client/cmd/format"
	"cryptofolio/cmd/client/cmd/types"
	"cryptofolio/internal/app/client"
	"cryptofolio/internal/model"
)

var SetRoleCmd = &cobra.Command{
	Use:   "set-role <user-id> <role>",
	Short: "Change an account's role (admin)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := types.RequireAdmin(cmd)
		if err != nil {
			return err
		}

		role := args[1]
		if role != model.RoleAdmin && role != model.RoleUser {
			return fmt.Errorf("unknown role %q", role)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if !app.Users.Update(ctx, args[0], client.UserUpdate{Role: &role}) {
			return fmt.Errorf("user %s not found", args[0])
		}

		format.Success("User %s is now %s", args[0], role)
		return nil
	},
}
