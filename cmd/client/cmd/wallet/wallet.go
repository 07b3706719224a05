// Package wallet holds the wallet commands.
package wallet

import "github.com/spf13/cobra"

var WalletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Wallet balances",
	Long:  `Shows and, for admins, adjusts portal wallet balances.`,
}
