package tx

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

var ConfirmCmd = &cobra.Command{
	Use:   "confirm <tx-id>",
	Short: "Confirm a pending transaction (admin)",
	Long: `Marks a pending transaction confirmed. Deposits credit the user's
wallet at confirmation time.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := types.RequireAdmin(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		t, found := findTransaction(ctx, app, args[0])
		if !found {
			return fmt.Errorf("transaction %s not found", args[0])
		}
		if t.Status != model.StatusPending {
			return fmt.Errorf("transaction %s is already %s", t.ID, t.Status)
		}

		if t.Type == model.TxDeposit || t.Type == model.TxProfit {
			wl, ok := app.Wallets.Get(ctx, t.UserID, t.Asset)
			if !ok {
				return fmt.Errorf("no %s wallet for user %s", t.Asset, t.UserID)
			}
			newBalance := wl.Balance + t.Amount
			if !app.Wallets.Update(ctx, t.UserID, t.Asset, client.WalletUpdate{Balance: &newBalance}) {
				return fmt.Errorf("failed to credit %s wallet", t.Asset)
			}
		}

		status := model.StatusConfirmed
		if !app.Transactions.Update(ctx, t.ID, client.TransactionUpdate{Status: &status}) {
			return fmt.Errorf("failed to update transaction %s", t.ID)
		}

		format.Success("Transaction %s confirmed", t.ID)
		return nil
	},
}

func findTransaction(ctx context.Context, app *client.App, id string) (model.Transaction, bool) {
	loaded := app.Transactions.GetAll(ctx)
	for _, t := range loaded.Items {
		if t.ID == id {
			return t, true
		}
	}
	return model.Transaction{}, false
}
