// Package price holds the quote commands.
package price

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cryptofolio/cmd/client/cmd/format"
	"cryptofolio/cmd/client/cmd/types"
	"cryptofolio/internal/model"
)

var (
	currency string
	fresh    bool
)

var PriceCmd = &cobra.Command{
	Use:   "price [asset...]",
	Short: "Show asset prices",
	Long: `Shows current quotes from the price cache. With no arguments all
supported assets are quoted in one batched request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		requested := args
		if len(requested) == 0 {
			requested = model.SupportedAssets
		}
		assets := make([]string, len(requested))
		for i, a := range requested {
			assets[i] = strings.ToUpper(a)
		}

		if fresh {
			app.Prices.ClearCache()
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		prices := app.Prices.GetPrices(ctx, assets, currency)

		format.Header(fmt.Sprintf("Prices (%s)", strings.ToUpper(currency)))
		for _, asset := range assets {
			fmt.Printf("%-6s %14.4f\n", asset, prices[asset])
		}
		return nil
	},
}

func init() {
	PriceCmd.Flags().StringVar(&currency, "currency", "eur", "quote currency")
	PriceCmd.Flags().BoolVar(&fresh, "fresh", false, "bypass the price cache")
}
