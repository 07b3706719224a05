package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cryptofolio/cmd/client/cmd/format"
	"cryptofolio/cmd/client/cmd/types"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <plan-id>",
	Short: "Delete an investment plan (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := types.RequireAdmin(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if _, found := app.Plans.GetByID(ctx, args[0]); !found {
			return fmt.Errorf("plan %s not found", args[0])
		}
		if !app.Plans.Delete(ctx, args[0]) {
			return fmt.Errorf("failed to delete plan %s", args[0])
		}

		format.Success("Plan %s deleted", args[0])
		return nil
	},
}
