package cmd

import (
	"cryptofolio/cmd/client/cmd/auth"
	"cryptofolio/cmd/client/cmd/plan"
	"cryptofolio/cmd/client/cmd/price"
	"cryptofolio/cmd/client/cmd/settings"
	"cryptofolio/cmd/client/cmd/tx"
	"cryptofolio/cmd/client/cmd/user"
	"cryptofolio/cmd/client/cmd/wallet"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.WhoamiCmd)

	rootCmd.AddCommand(wallet.WalletCmd)
	wallet.WalletCmd.AddCommand(wallet.ListCmd)
	wallet.WalletCmd.AddCommand(wallet.SetBalanceCmd)

	rootCmd.AddCommand(plan.PlanCmd)
	plan.PlanCmd.AddCommand(plan.ListCmd)
	plan.PlanCmd.AddCommand(plan.CreateCmd)
	plan.PlanCmd.AddCommand(plan.UpdateCmd)
	plan.PlanCmd.AddCommand(plan.DeleteCmd)

	rootCmd.AddCommand(tx.TxCmd)
	tx.TxCmd.AddCommand(tx.ListCmd)
	tx.TxCmd.AddCommand(tx.DepositCmd)
	tx.TxCmd.AddCommand(tx.InvestCmd)
	tx.TxCmd.AddCommand(tx.WithdrawCmd)
	tx.TxCmd.AddCommand(tx.ConfirmCmd)
	tx.TxCmd.AddCommand(tx.RejectCmd)

	rootCmd.AddCommand(user.UserCmd)
	user.UserCmd.AddCommand(user.ListCmd)
	user.UserCmd.AddCommand(user.SetRoleCmd)
	user.UserCmd.AddCommand(user.DeleteCmd)

	rootCmd.AddCommand(price.PriceCmd)

	rootCmd.AddCommand(settings.SettingsCmd)
	settings.SettingsCmd.AddCommand(settings.ShowCmd)
	settings.SettingsCmd.AddCommand(settings.SetCmd)

	rootCmd.AddCommand(statusCmd)
}
