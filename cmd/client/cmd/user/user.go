// Package user holds the admin account-management commands.
package user

import "github.com/spf13/cobra"

var UserCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage portal accounts (admin)",
}
