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

var rejectReason string

var RejectCmd = &cobra.Command{
	Use:   "reject <tx-id>",
	Short: "Reject a pending transaction (admin)",
	Long: `Marks a pending transaction rejected. Investments and withdrawals
refund the deducted amount back to the wallet.`,
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

		if t.Type == model.TxInvest || t.Type == model.TxWithdraw {
			wl, ok := app.Wallets.Get(ctx, t.UserID, t.Asset)
			if ok {
				newBalance := wl.Balance + t.Amount
				if !app.Wallets.Update(ctx, t.UserID, t.Asset, client.WalletUpdate{Balance: &newBalance}) {
					return fmt.Errorf("failed to refund %s wallet", t.Asset)
				}
			}
		}

		status := model.StatusRejected
		upd := client.TransactionUpdate{Status: &status}
		if rejectReason != "" {
			upd.Reason = &rejectReason
		}
		if !app.Transactions.Update(ctx, t.ID, upd) {
			return fmt.Errorf("failed to update transaction %s", t.ID)
		}

		format.Success("Transaction %s rejected", t.ID)
		return nil
	},
}

func init() {
	RejectCmd.Flags().StringVar(&rejectReason, "reason", "", "rejection reason shown to the user")
}
