package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cryptofolio/cmd/client/cmd/format"
	"cryptofolio/cmd/client/cmd/types"
	"cryptofolio/internal/model"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the connection to the data proxy",
	Long: `Pings the proxy health endpoint and reports where collection reads
currently come from.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := app.CheckConnection(ctx); err != nil {
			fmt.Printf("proxy %s: unreachable (%v)\n", app.Cfg.ProxyURL, err)
		} else {
			format.Success("proxy %s: ok", app.Cfg.ProxyURL)
		}

		loaded := app.Plans.GetAll(ctx)
		fmt.Printf("data source: %s (%d plans, %s)\n",
			loaded.Provenance, len(loaded.Items), model.PlansFile)
		return nil
	},
}
