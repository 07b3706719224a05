package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cryptofolio/cmd/client/cmd/format"
	"cryptofolio/cmd/client/cmd/types"
	"cryptofolio/internal/app/client"
)

var updateFlags struct {
	name           string
	asset          string
	yieldPercent   float64
	minEUR         float64
	maxEUR         float64
	durationMonths int
	description    string
}

var UpdateCmd = &cobra.Command{
	Use:   "update <plan-id>",
	Short: "Update an investment plan (admin)",
	Long:  `Changes only the fields set via flags; the rest keep their values.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := types.RequireAdmin(cmd)
		if err != nil {
			return err
		}

		var upd client.PlanUpdate
		if cmd.Flags().Changed("name") {
			upd.Name = &updateFlags.name
		}
		if cmd.Flags().Changed("asset") {
			upd.Asset = &updateFlags.asset
		}
		if cmd.Flags().Changed("yield") {
			upd.YieldPercent = &updateFlags.yieldPercent
		}
		if cmd.Flags().Changed("min") {
			upd.MinEUR = &updateFlags.minEUR
		}
		if cmd.Flags().Changed("max") {
			upd.MaxEUR = &updateFlags.maxEUR
		}
		if cmd.Flags().Changed("months") {
			upd.DurationMonths = &updateFlags.durationMonths
		}
		if cmd.Flags().Changed("description") {
			upd.Description = &updateFlags.description
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if !app.Plans.Update(ctx, args[0], upd) {
			return fmt.Errorf("plan %s not found", args[0])
		}

		format.Success("Plan %s updated", args[0])
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVar(&updateFlags.name, "name", "", "plan name")
	UpdateCmd.Flags().StringVar(&updateFlags.asset, "asset", "", "plan asset")
	UpdateCmd.Flags().Float64Var(&updateFlags.yieldPercent, "yield", 0, "yearly yield percent")
	UpdateCmd.Flags().Float64Var(&updateFlags.minEUR, "min", 0, "minimum investment in EUR")
	UpdateCmd.Flags().Float64Var(&updateFlags.maxEUR, "max", 0, "maximum investment in EUR")
	UpdateCmd.Flags().IntVar(&updateFlags.durationMonths, "months", 0, "plan duration in months")
	UpdateCmd.Flags().StringVar(&updateFlags.description, "description", "", "plan description")
}
