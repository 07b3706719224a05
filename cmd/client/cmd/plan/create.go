package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cryptofolio/cmd/client/cmd/format"
	"cryptofolio/cmd/client/cmd/types"
	"cryptofolio/internal/model"
)

var createFlags struct {
	name           string
	asset          string
	yieldPercent   float64
	minEUR         float64
	maxEUR         float64
	durationMonths int
	description    string
}

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an investment plan (admin)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _, err := types.RequireAdmin(cmd)
		if err != nil {
			return err
		}
		if createFlags.name == "" || createFlags.asset == "" {
			return fmt.Errorf("--name and --asset are required")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		pl := model.Plan{
			ID:             fmt.Sprintf("p%d", time.Now().UnixMilli()),
			Name:           createFlags.name,
			Asset:          createFlags.asset,
			YieldPercent:   createFlags.yieldPercent,
			MinEUR:         createFlags.minEUR,
			MaxEUR:         createFlags.maxEUR,
			DurationMonths: createFlags.durationMonths,
			Description:    createFlags.description,
		}
		if !app.Plans.Create(ctx, pl) {
			return fmt.Errorf("failed to store plan")
		}

		format.Success("Plan %s created", pl.ID)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVar(&createFlags.name, "name", "", "plan name")
	CreateCmd.Flags().StringVar(&createFlags.asset, "asset", "", "plan asset")
	CreateCmd.Flags().Float64Var(&createFlags.yieldPercent, "yield", 0, "yearly yield percent")
	CreateCmd.Flags().Float64Var(&createFlags.minEUR, "min", 0, "minimum investment in EUR")
	CreateCmd.Flags().Float64Var(&createFlags.maxEUR, "max", 0, "maximum investment in EUR")
	CreateCmd.Flags().IntVar(&createFlags.durationMonths, "months", 12, "plan duration in months")
	CreateCmd.Flags().StringVar(&createFlags.description, "description", "", "plan description")
}
