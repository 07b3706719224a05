// Package plan holds the investment plan commands.
package plan

import "github.com/spf13/cobra"

var PlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Investment plans",
	Long:  `Lists the portal investment plans; admins can manage them.`,
}
