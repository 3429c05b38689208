// Command example demonstrates the library API on a small Poisson
// instance: holding cost 1, stockout cost 4, fixed order cost 5, mean
// demand 6 per period.
package main

import (
	"fmt"
	"log"

	"github.com/supplyos/ssopt/pkg/application/services"
	"github.com/supplyos/ssopt/pkg/domain/entities"
)

func main() {
	params, err := entities.NewCostParameters(1, 4, 5)
	if err != nil {
		log.Fatalf("cost parameters: %v", err)
	}
	demand, err := entities.NewPoissonDemand(6)
	if err != nil {
		log.Fatalf("demand model: %v", err)
	}
	solver, err := services.NewPolicySolver(params, demand)
	if err != nil {
		log.Fatalf("solver: %v", err)
	}

	policy, err := solver.FindOptimalPolicy()
	if err != nil {
		log.Fatalf("optimize: %v", err)
	}
	fmt.Printf("optimal policy: %s\n", policy)

	// Evaluate a nearby suboptimal pair for comparison.
	cost, err := solver.PolicyCost(policy.ReorderPoint-1, policy.OrderUpToLevel+2)
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}
	fmt.Printf("cost of (s=%d, S=%d): %.6f\n",
		policy.ReorderPoint-1, policy.OrderUpToLevel+2, cost)
}
