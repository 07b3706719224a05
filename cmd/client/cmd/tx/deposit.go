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
	"cryptofolio/internal/model"
)

var DepositCmd = &cobra.Command{
	Use:   "deposit <asset> <amount>",
	Short: "Announce a deposit",
	Long: `Records a pending deposit for your wallet's deposit address. The
balance is credited when an admin confirms the transaction.`,
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

		t := model.Transaction{
			ID:        fmt.Sprintf("tx%d", time.Now().UnixMilli()),
			UserID:    usr.ID,
			Type:      model.TxDeposit,
			Asset:     asset,
			Amount:    amount,
			Status:    model.StatusPending,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}
		if !app.Transactions.Create(ctx, t) {
			return fmt.Errorf("failed to store transaction")
		}

		format.Success("Deposit %s announced, send %.8f %s to %s", t.ID, amount, asset, wl.DepositAddress)
		return nil
	},
}
