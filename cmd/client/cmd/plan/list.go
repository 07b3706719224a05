package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cryptofolio/cmd/client/cmd/format"
	"cryptofolio/cmd/client/cmd/types"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List investment plans",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		loaded := app.Plans.GetAll(ctx)
		format.ProvenanceNotice(loaded.Provenance)

		if len(loaded.Items) == 0 {
			fmt.Println("No plans.")
			return nil
		}

		format.Header("Investment plans")
		for _, pl := range loaded.Items {
			fmt.Printf("%-4s %-20s %-6s %5.1f%%/y  %d months  %s - %s\n",
				pl.ID, pl.Name, pl.Asset, pl.YieldPercent, pl.DurationMonths,
				format.EUR(pl.MinEUR), format.EUR(pl.MaxEUR))
			if pl.Description != "" {
				fmt.Printf("     %s\n", pl.Description)
			}
		}
		return nil
	},
}
