package tx

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cryptofolio/cmd/client/cmd/format"
	"cryptofolio/cmd/client/cmd/types"
	"cryptofolio/internal/model"
)

var (
	allUsers   bool
	onlyStatus string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
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

		loaded := app.Transactions.GetByUserID(ctx, usr.ID)
		if allUsers {
			loaded = app.Transactions.GetAll(ctx)
		}
		format.ProvenanceNotice(loaded.Provenance)

		shown := 0
		for _, t := range loaded.Items {
			if onlyStatus != "" && t.Status != onlyStatus {
				continue
			}
			shown++
			fmt.Printf("%-20s %-10s %-6s %14.8f  %-10s %s\n",
				t.ID, t.Type, t.Asset, t.Amount, t.Status, t.Timestamp)
			if t.Reason != "" {
				fmt.Printf("  reason: %s\n", t.Reason)
			}
		}
		if shown == 0 {
			fmt.Println("No transactions.")
		}
		return nil
	},
}

func init() {
	ListCmd.Flags().BoolVar(&allUsers, "all", false, "list every user's transactions (admin)")
	ListCmd.Flags().StringVar(&onlyStatus, "status", "", "filter by status (pending, confirmed, rejected)")
}
