package tx

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"cryptofolio/cmd/client/cmd/format"
	"cryptofolio/cmd/client/cmd/types"
	"cryptofolio/internal/app/client"
	"cryptofolio/internal/model"
)

var InvestCmd = &cobra.Command{
	Use:   "invest <plan-id> <amount-eur>",
	Short: "Invest into a plan",
	Long: `Places a pending investment. The EUR amount is converted into the
plan's asset at the current price and deducted from your wallet; an
admin confirms or rejects the transaction.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, usr, err := types.RequireUser(cmd)
		if err != nil {
			return err
		}

		amountEUR, err := strconv.ParseFloat(args[1], 64)
		if err != nil || amountEUR <= 0 {
			return fmt.Errorf("invalid amount %q", args[1])
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		pl, found := app.Plans.GetByID(ctx, args[0])
		if !found {
			return fmt.Errorf("plan %s not found", args[0])
		}
		if amountEUR < pl.MinEUR {
			return fmt.Errorf("minimum investment for %s is %s", pl.Name, format.EUR(pl.MinEUR))
		}
		if pl.MaxEUR > 0 && amountEUR > pl.MaxEUR {
			return fmt.Errorf("maximum investment for %s is %s", pl.Name, format.EUR(pl.MaxEUR))
		}

		amount := app.Prices.ConvertFromEUR(ctx, pl.Asset, amountEUR)

		wl, found := app.Wallets.Get(ctx, usr.ID, pl.Asset)
		if !found {
			return fmt.Errorf("no %s wallet", pl.Asset)
		}
		if wl.Balance < amount {
			return fmt.Errorf("insufficient %s balance: have %.8f, need %.8f", pl.Asset, wl.Balance, amount)
		}

		newBalance := wl.Balance - amount
		if !app.Wallets.Update(ctx, usr.ID, pl.Asset, client.WalletUpdate{Balance: &newBalance}) {
			return fmt.Errorf("failed to update %s wallet", pl.Asset)
		}

		t := model.Transaction{
			ID:          fmt.Sprintf("tx%d", time.Now().UnixMilli()),
			UserID:      usr.ID,
			Type:        model.TxInvest,
			Asset:       pl.Asset,
			Amount:      amount,
			Status:      model.StatusPending,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			Description: fmt.Sprintf("Investment into %s (%s)", pl.Name, format.EUR(amountEUR)),
			PlanID:      pl.ID,
		}
		if !app.Transactions.Create(ctx, t) {
			return fmt.Errorf("failed to store transaction")
		}

		roi := client.CalculateROI(amountEUR, pl.YieldPercent, pl.DurationMonths)
		format.Success("Investment %s placed: %.8f %s, projected return %s", t.ID, amount, pl.Asset, format.EUR(roi))
		return nil
	},
}
