package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cryptofolio/cmd/client/cmd/format"
	"cryptofolio/cmd/client/cmd/types"
	"cryptofolio/internal/model"
)

var allUsers bool

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List wallets with their EUR valuation",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, usr, err := types.RequireUser(cmd)
		if err != nil {
			return err
		}
		if allUsers && usr.Role != model.RoleAdmin {
			return fmt.Errorf("admin role required for --all")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		loaded := app.Wallets.GetByUserID(ctx, usr.ID)
		if allUsers {
			loaded = app.Wallets.GetAll(ctx)
		}
		format.ProvenanceNotice(loaded.Provenance)

		if len(loaded.Items) == 0 {
			fmt.Println("No wallets.")
			return nil
		}

		assets := make([]string, 0, len(loaded.Items))
		for _, wl := range loaded.Items {
			assets = append(assets, wl.Asset)
		}
		prices := app.Prices.GetPrices(ctx, assets, "eur")

		format.Header("Wallets")
		var total float64
		for _, wl := range loaded.Items {
			valuation := wl.Balance * prices[wl.Asset]
			total += valuation
			if allUsers {
				fmt.Printf("%-8s %-6s %14.8f  %12s  %s\n",
					wl.UserID, wl.Asset, wl.Balance, format.EUR(valuation), wl.DepositAddress)
				continue
			}
			fmt.Printf("%-6s %14.8f  %12s  %s\n",
				wl.Asset, wl.Balance, format.EUR(valuation), wl.DepositAddress)
		}
		fmt.Printf("Total: %s\n", format.EUR(total))
		return nil
	},
}

func init() {
	ListCmd.Flags().BoolVar(&allUsers, "all", false, "list every user's wallets (admin)")
}
