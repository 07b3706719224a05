package user

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
	Short: "List portal accounts (admin)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _, err := types.RequireAdmin(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		loaded := app.Users.GetAll(ctx)
		format.ProvenanceNotice(loaded.Provenance)

		format.Header("Accounts")
		for _, usr := range loaded.Items {
			fmt.Printf("%-16s %-8s %-24s %s\n", usr.ID, usr.Role, usr.Email, usr.Name)
		}
		return nil
	},
}
