// Package output renders solver results in the formats supported by the
// command line interface.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds configuration for output generation
type Config struct {
	Format  string
	Verbose bool
}

// Result is one solved or evaluated instance ready for rendering.
type Result struct {
	InstanceID     string        `json:"instance_id"`
	ReorderPoint   int           `json:"reorder_point"`
	OrderUpToLevel int           `json:"order_up_to_level"`
	AverageCost    float64       `json:"average_cost"`
	Elapsed        time.Duration `json:"elapsed_ns"`
}

// Generate writes the results to w in the configured format.
func Generate(w io.Writer, results []Result, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(w, results, config)
	case "json":
		return generateJSONOutput(w, results)
	case "csv":
		return generateCSVOutput(w, results)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(w io.Writer, results []Result, config Config) error {
	fmt.Fprintf(w, "(s,S) Policy Results\n")
	fmt.Fprintf(w, "====================\n\n")

	fmt.Fprintf(w, "%-20s %-10s %-12s %-14s\n",
		"Instance", "Reorder s", "Order-up S", "Avg Cost")
	fmt.Fprintf(w, "%-20s %-10s %-12s %-14s\n",
		"--------------------", "----------", "------------", "--------------")

	for _, result := range results {
		fmt.Fprintf(w, "%-20s %-10d %-12d %-14s\n",
			result.InstanceID,
			result.ReorderPoint,
			result.OrderUpToLevel,
			roundedCost(result.AverageCost))
	}
	fmt.Fprintln(w)

	if config.Verbose {
		for _, result := range results {
			fmt.Fprintf(w, "%s solved in %v\n", result.InstanceID, result.Elapsed)
		}
	}
	return nil
}

// generateJSONOutput creates machine-readable JSON output
func generateJSONOutput(w io.Writer, results []Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results as JSON: %w", err)
	}
	return nil
}

// generateCSVOutput creates CSV output suitable for spreadsheet import
func generateCSVOutput(w io.Writer, results []Result) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"instance_id", "reorder_point", "order_up_to_level", "average_cost"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		record := []string{
			result.InstanceID,
			strconv.Itoa(result.ReorderPoint),
			strconv.Itoa(result.OrderUpToLevel),
			roundedCost(result.AverageCost),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record for %s: %w", result.InstanceID, err)
		}
	}
	return nil
}

// roundedCost formats an average cost to six decimal places without
// binary-float formatting noise.
func roundedCost(cost float64) string {
	return decimal.NewFromFloat(cost).Round(6).String()
}
