package main

import (
	"github.com/spf13/cobra"

	"github.com/supplyos/ssopt/pkg/interfaces/cli/commands"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find the globally optimal (s,S) policy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return commands.NewSolveCommand(config).Execute(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
