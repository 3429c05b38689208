package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/supplyos/ssopt/pkg/interfaces/cli/commands"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ssopt",
	Short: "Exact (s,S) inventory policy solver for discrete demand",
	Long: `ssopt computes exact long-run average costs and globally optimal ` +
		`parameters for periodic-review (s,S) inventory policies under discrete ` +
		`demand, via the Zheng-Federgruen algorithm.`,
}

var config commands.Config

func init() {
	rootCmd.PersistentFlags().StringVar(&config.InstancesFile, "instances", "", "Path to instances CSV file (overrides the single-instance flags)")
	rootCmd.PersistentFlags().Float64Var(&config.HoldingCost, "holding-cost", 0, "Holding cost per item per period")
	rootCmd.PersistentFlags().Float64Var(&config.StockoutCost, "stockout-cost", 0, "Stockout cost per item per period")
	rootCmd.PersistentFlags().Float64Var(&config.FixedCost, "fixed-cost", 0, "Fixed cost per order placed")
	rootCmd.PersistentFlags().StringVar(&config.DemandKind, "demand", "poisson", "Demand distribution: poisson or explicit")
	rootCmd.PersistentFlags().Float64Var(&config.DemandMean, "mean", 0, "Mean demand per period (poisson)")
	rootCmd.PersistentFlags().StringVar(&config.DemandPMF, "pmf", "", "Comma-separated pmf for demand 0..hi (explicit)")
	rootCmd.PersistentFlags().StringVar(&config.Format, "format", "text", "Output format: text, json, csv")
	rootCmd.PersistentFlags().BoolVar(&config.Verbose, "verbose", false, "Report solve times")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
