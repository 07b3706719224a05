package user

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cryptofolio/cmd/client/cmd/format"
	"cryptofolio/cmd/client/cmd/types"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete an account and its wallets (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, admin, err := types.RequireAdmin(cmd)
		if err != nil {
			return err
		}
		if admin.ID == args[0] {
			return fmt.Errorf("refusing to delete the logged-in account")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if _, found := app.Users.GetByID(ctx, args[0]); !found {
			return fmt.Errorf("user %s not found", args[0])
		}
		if !app.Users.Delete(ctx, args[0]) {
			return fmt.Errorf("failed to delete user %s", args[0])
		}

		for _, wl := range app.Wallets.GetByUserID(ctx, args[0]).Items {
			if !app.Wallets.Delete(ctx, wl.UserID, wl.Asset) {
				return fmt.Errorf("failed to delete wallet %s/%s", wl.UserID, wl.Asset)
			}
		}

		format.Success("User %s deleted", args[0])
		return nil
	},
}
