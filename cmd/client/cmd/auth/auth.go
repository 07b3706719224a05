// Package auth holds the account commands.
package auth

import "github.com/spf13/cobra"

var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Account management",
	Long:  `Login, registration and session management for the portal.`,
}
