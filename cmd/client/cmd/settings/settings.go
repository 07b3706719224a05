// Package settings holds the portal settings commands.
package settings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cryptofolio/cmd/client/cmd/format"
	"cryptofolio/cmd/client/cmd/types"
	"cryptofolio/internal/app/client"
)

var SettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Portal settings",
}

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the portal settings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		st, prov := app.Settings.Get(ctx)
		format.ProvenanceNotice(prov)

		format.Header(fmt.Sprintf("%s %s", st.AppName, st.Version))
		fmt.Printf("default currency:  %s\n", st.DefaultCurrency)
		fmt.Printf("supported assets:  %s\n", strings.Join(st.SupportedAssets, ", "))
		fmt.Printf("price cache:       %d ms\n", st.CacheDuration)
		fmt.Printf("maintenance mode:  %v\n", st.MaintenanceMode)
		fmt.Printf("features:          prices=%v admin=%v registration=%v arbitrage=%v\n",
			st.Features.RealTimePrices, st.Features.AdminPanel,
			st.Features.UserRegistration, st.Features.ArbitrageSimulation)
		return nil
	},
}

var setFlags struct {
	apiKey        string
	cacheDuration int
	currency      string
	maintenance   bool
}

var SetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change portal settings (admin)",
	Long:  `Changes only the fields set via flags; the rest keep their values.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _, err := types.RequireAdmin(cmd)
		if err != nil {
			return err
		}

		var upd client.SettingsUpdate
		if cmd.Flags().Changed("api-key") {
			upd.CoingeckoAPIKey = &setFlags.apiKey
		}
		if cmd.Flags().Changed("cache-ms") {
			upd.CacheDuration = &setFlags.cacheDuration
		}
		if cmd.Flags().Changed("currency") {
			upd.DefaultCurrency = &setFlags.currency
		}
		if cmd.Flags().Changed("maintenance") {
			upd.MaintenanceMode = &setFlags.maintenance
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if !app.Settings.Update(ctx, upd) {
			return fmt.Errorf("failed to store settings")
		}

		format.Success("Settings updated")
		return nil
	},
}

func init() {
	SetCmd.Flags().StringVar(&setFlags.apiKey, "api-key", "", "price feed API key")
	SetCmd.Flags().IntVar(&setFlags.cacheDuration, "cache-ms", 0, "price cache TTL in milliseconds")
	SetCmd.Flags().StringVar(&setFlags.currency, "currency", "", "default display currency")
	SetCmd.Flags().BoolVar(&setFlags.maintenance, "maintenance", false, "maintenance mode")
}
