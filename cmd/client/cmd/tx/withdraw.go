package tx

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cryptofolio/cmd/client/cmd/format"
	"cryptofolio/cmd/client/cmd/types"
	"cryptofolio/internal/app/client"
	"cryptofolio/internal/model"
)

var WithdrawCmd = &cobra.Command{
	Use:   "withdraw <asset> <amount>",
	Short: "Withdraw from a wallet",
	Long: `Places a pending withdrawal in asset units and deducts the amount
from your wallet; an admin confirms or rejects it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, usr, err := types.RequireUser(cmd)
		if err != nil {
			return err
		}

		asset := strings.ToUpper(args[0])
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil || amount <= 0 {
			return fmt.Errorf("invalid amount %q", args[1])
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		wl, found := app.Wallets.Get(ctx, usr.ID, asset)
		if !found {
			return fmt.Errorf("no %s wallet", asset)
		}
		if wl.Balance < amount {
			return fmt.Errorf("insufficient %s balance: have %.8f", asset, wl.Balance)
		}

		newBalance := wl.Balance - amount
		if !app.Wallets.Update(ctx, usr.ID, asset, client.WalletUpdate{Balance: &newBalance}) {
			return fmt.Errorf("failed to update %s wallet", asset)
		}

		t := model.Transaction{
			ID:        fmt.Sprintf("tx%d", time.Now().UnixMilli()),
			UserID:    usr.ID,
			Type:      model.TxWithdraw,
			Asset:     asset,
			Amount:    amount,
			Status:    model.StatusPending,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}
		if !app.Transactions.Create(ctx, t) {
			return fmt.Errorf("failed to store transaction")
		}

		format.Success("Withdrawal %s placed: %.8f %s", t.ID, amount, asset)
		return nil
	},
}
