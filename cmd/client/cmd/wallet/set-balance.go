package wallet

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"cryptofolio/cmd/client/cmd/format"
	"cryptofolio/cmd/client/cmd/types"
	"cryptofolio/internal/app/client"
)

var SetBalanceCmd = &cobra.Command{
	Use:   "set-balance <user-id> <asset> <balance>",
	Short: "Set a wallet balance (admin)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := types.RequireAdmin(cmd)
		if err != nil {
			return err
		}

		balance, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid balance %q: %w", args[2], err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		userID, asset := args[0], args[1]
		ok := app.Wallets.Update(ctx, userID, asset, client.WalletUpdate{Balance: &balance})
		if !ok {
			return fmt.Errorf("wallet %s/%s not found", userID, asset)
		}

		format.Success("Balance of %s/%s set to %s", userID, asset, args[2])
		return nil
	},
}
