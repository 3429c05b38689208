package main

import (
	"github.com/spf13/cobra"

	"github.com/supplyos/ssopt/pkg/interfaces/cli/commands"
)

var (
	costReorderPoint   int
	costOrderUpToLevel int
)

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Evaluate the exact average cost of a given (s,S) pair",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		command := commands.NewCostCommand(config, costReorderPoint, costOrderUpToLevel)
		return command.Execute(cmd.Context())
	},
}

func init() {
	costCmd.Flags().IntVar(&costReorderPoint, "reorder-point", 0, "Reorder point s")
	costCmd.Flags().IntVar(&costOrderUpToLevel, "order-up-to", 0, "Order-up-to level S")
	rootCmd.AddCommand(costCmd)
}
