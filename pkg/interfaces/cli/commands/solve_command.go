package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/supplyos/ssopt/pkg/application/services"
	"github.com/supplyos/ssopt/pkg/domain/entities"
	"github.com/supplyos/ssopt/pkg/infrastructure/repositories/csv"
	"github.com/supplyos/ssopt/pkg/interfaces/cli/output"
)

// Config holds the shared flag configuration for policy commands.
type Config struct {
	InstancesFile string
	HoldingCost   float64
	StockoutCost  float64
	FixedCost     float64
	DemandKind    string
	DemandMean    float64
	DemandPMF     string
	Format        string
	Verbose       bool
}

// SolveCommand finds the optimal (s,S) policy for one instance given by
// flags, or for every instance in a CSV file.
type SolveCommand struct {
	config Config
}

// NewSolveCommand creates a new solve command with the given configuration
func NewSolveCommand(config Config) *SolveCommand {
	return &SolveCommand{config: config}
}

// Execute runs the solve command
func (c *SolveCommand) Execute(ctx context.Context) error {
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
		policy, err := solver.FindOptimalPolicy()
		if err != nil {
			return fmt.Errorf("instance %s: %w", instance.ID, err)
		}

		results = append(results, output.Result{
			InstanceID:     instance.ID,
			ReorderPoint:   policy.ReorderPoint,
			OrderUpToLevel: policy.OrderUpToLevel,
			AverageCost:    policy.AverageCost,
			Elapsed:        time.Since(start),
		})
	}

	return output.Generate(os.Stdout, results, output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
	})
}

// resolveInstances builds the instance list either from the instances file
// or from the single instance described by flags.
func resolveInstances(config Config) ([]*entities.ProblemInstance, error) {
	if config.InstancesFile != "" {
		loader := csv.NewLoader()
		instances, err := loader.LoadInstances(config.InstancesFile)
		if err != nil {
			return nil, fmt.Errorf("error loading instances: %w", err)
		}
		return instances, nil
	}

	params, err := entities.NewCostParameters(config.HoldingCost, config.StockoutCost, config.FixedCost)
	if err != nil {
		return nil, err
	}
	demand, err := resolveDemand(config)
	if err != nil {
		return nil, err
	}
	return []*entities.ProblemInstance{{ID: "flags", Params: params, Demand: demand}}, nil
}

// resolveDemand builds a demand model from the flag configuration.
func resolveDemand(config Config) (entities.DemandModel, error) {
	switch config.DemandKind {
	case "poisson":
		return entities.NewPoissonDemand(config.DemandMean)
	case "explicit":
		if strings.TrimSpace(config.DemandPMF) == "" {
			return nil, &entities.ConfigurationError{Reason: "explicit demand requires --pmf"}
		}
		fields := strings.Split(config.DemandPMF, ",")
		pmf := make([]float64, len(fields))
		for i, field := range fields {
			mass, err := decimal.NewFromString(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("invalid pmf value %q: %w", field, err)
			}
			pmf[i] = mass.InexactFloat64()
		}
		return entities.NewExplicitDemand(len(pmf)-1, pmf)
	default:
		return nil, &entities.ConfigurationError{
			Reason: fmt.Sprintf("unknown demand kind %q, want poisson or explicit", config.DemandKind),
		}
	}
}
