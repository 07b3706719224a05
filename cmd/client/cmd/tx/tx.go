// Package tx holds the transaction commands.
package tx

import "github.com/spf13/cobra"

var TxCmd = &cobra.Command{
	Use:   "tx",
	Short: "Transactions",
	Long:  `Lists transactions, places investments and withdrawals, and lets admins settle pending ones.`,
}
