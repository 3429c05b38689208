package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/supplyos/ssopt/pkg/application/services"
	"github.com/supplyos/ssopt/pkg/interfaces/cli/output"
)

// CostCommand evaluates the exact average cost of a caller-chosen (s,S)
// pair instead of searching for the optimum.
type CostCommand struct {
	config         Config
	reorderPoint   int
	orderUpToLevel int
}

// NewCostCommand creates a new cost command with the given configuration
func NewCostCommand(config Config, reorderPoint, orderUpToLevel int) *CostCommand {
	return &CostCommand{
		config:         config,
		reorderPoint:   reorderPoint,
		orderUpToLevel: orderUpToLevel,
	}
}

// Execute runs the cost command
func (c *CostCommand) Execute(ctx context.Context) error {
	instances, err := resolveInstances(c.config)
	if err != nil {
		return err
	}

	results := make([]output.Result, 0, len(instances))
	for _, instance := range instances {
		if err := ctx.Err(); err != nil {
			return err
		}

		solver, err := services.NewPolicySolver(instance.Params, instance.Demand)
		if err != nil {
			return fmt.Errorf("instance %s: %w", instance.ID, err)
		}

		start := time.Now()
		cost, err := solver.PolicyCost(c.reorderPoint, c.orderUpToLevel)
		if err != nil {
			return fmt.Errorf("instance %s: %w", instance.ID, err)
		}

		results = append(results, output.Result{
			InstanceID:     instance.ID,
			ReorderPoint:   c.reorderPoint,
			OrderUpToLevel: c.orderUpToLevel,
			AverageCost:    cost,
			Elapsed:        time.Since(start),
		})
	}

	return output.Generate(os.Stdout, results, output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
	})
}
