package services

import (
	"fmt"

	"github.com/supplyos/ssopt/pkg/domain/entities"
	"github.com/supplyos/ssopt/pkg/domain/services/newsvendor"
	"github.com/supplyos/ssopt/pkg/domain/services/renewal"
)

// Defensive bound on the policy search loops. The Zheng-Federgruen search
// terminates without any cap when the single-period cost is quasi-convex;
// exceeding the bound signals a demand model violating that assumption.
var maxSearchIterations = 1_000_000

// PolicySolver evaluates and optimizes periodic-review (s,S) policies for
// a fixed cost structure and demand distribution. It is stateless between
// calls; identical inputs always produce identical outputs.
type PolicySolver struct {
	params entities.CostParameters
	demand entities.DemandModel
}

// NewPolicySolver creates a solver for the given costs and demand model.
func NewPolicySolver(params entities.CostParameters, demand entities.DemandModel) (*PolicySolver, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if demand == nil {
		return nil, &entities.ConfigurationError{Reason: "demand model is required"}
	}
	return &PolicySolver{params: params, demand: demand}, nil
}

// PolicyCost returns the exact long-run average cost per period of the
// (reorderPoint, orderUpTo) policy, using the renewal-reward identity:
// expected cost per ordering cycle divided by expected cycle length.
func (ps *PolicySolver) PolicyCost(reorderPoint, orderUpTo int) (float64, error) {
	if reorderPoint >= orderUpTo {
		return 0, &entities.ValidationError{
			Reason: fmt.Sprintf("reorder point %d must be strictly below order-up-to level %d", reorderPoint, orderUpTo),
		}
	}

	gap := orderUpTo - reorderPoint
	pmf, err := ps.demand.PMF(gap)
	if err != nil {
		return 0, fmt.Errorf("building demand pmf for gap %d: %w", gap, err)
	}
	m, cycles, err := renewal.Arrays(pmf)
	if err != nil {
		return 0, err
	}

	// Expected cost per cycle: the fixed order cost plus the single-period
	// cost at each level the cycle passes through, weighted by the renewal
	// density.
	total := ps.params.FixedCost
	for d := 0; d < gap; d++ {
		total += m[d] * newsvendor.Cost(orderUpTo-d, ps.params, ps.demand)
	}
	return total / cycles[gap], nil
}

// FindOptimalPolicy returns the globally optimal (s,S) policy and its
// average cost, via the discrete Zheng-Federgruen bracket-and-expand
// search. It starts from the single-period optimum y*, brackets the
// matching reorder point below it, then expands the order-up-to level
// upward, pruning with the single-period cost bound.
func (ps *PolicySolver) FindOptimalPolicy() (entities.PolicyCandidate, error) {
	yStar, _, err := newsvendor.Optimal(ps.params, ps.demand)
	if err != nil {
		return entities.PolicyCandidate{}, err
	}

	// Bracket: the largest reorder point at which ordering in batches up to
	// yStar is no worse than the base-stock cost of sitting at s.
	orderUpTo := yStar
	reorder := yStar
	for iterations := 0; ; iterations++ {
		if iterations >= maxSearchIterations {
			return entities.PolicyCandidate{}, &entities.AlgorithmError{
				Reason: fmt.Sprintf("reorder point bracket did not converge within %d iterations", maxSearchIterations),
			}
		}
		reorder--
		cost, err := ps.PolicyCost(reorder, orderUpTo)
		if err != nil {
			return entities.PolicyCandidate{}, err
		}
		if cost <= newsvendor.Cost(reorder, ps.params, ps.demand) {
			break
		}
	}

	incumbent := entities.PolicyCandidate{ReorderPoint: reorder, OrderUpToLevel: orderUpTo}
	incumbent.AverageCost, err = ps.PolicyCost(incumbent.ReorderPoint, incumbent.OrderUpToLevel)
	if err != nil {
		return entities.PolicyCandidate{}, err
	}

	// Expand: consider larger order-up-to levels until the single-period
	// cost alone exceeds the incumbent, which rules out every level beyond.
	// Bracket conditions are non-strict and the improvement test is strict;
	// the asymmetry is part of the algorithm.
	for candidate, iterations := incumbent.OrderUpToLevel+1, 0; ; candidate, iterations = candidate+1, iterations+1 {
		if iterations >= maxSearchIterations {
			return entities.PolicyCandidate{}, &entities.AlgorithmError{
				Reason: fmt.Sprintf("order-up-to search did not converge within %d iterations", maxSearchIterations),
			}
		}
		if newsvendor.Cost(candidate, ps.params, ps.demand) > incumbent.AverageCost {
			break
		}

		cost, err := ps.PolicyCost(incumbent.ReorderPoint, candidate)
		if err != nil {
			return entities.PolicyCandidate{}, err
		}
		if cost < incumbent.AverageCost {
			improved, err := ps.raiseReorderPoint(reorder, candidate)
			if err != nil {
				return entities.PolicyCandidate{}, err
			}
			reorder = improved.ReorderPoint
			incumbent = improved
		}
	}
	return incumbent, nil
}

// raiseReorderPoint moves the reorder point up from its current bracket
// until batching to orderUpTo stops dominating the base-stock cost one
// level above, and returns the resulting candidate.
func (ps *PolicySolver) raiseReorderPoint(reorder, orderUpTo int) (entities.PolicyCandidate, error) {
	for iterations := 0; ; iterations++ {
		if iterations >= maxSearchIterations {
			return entities.PolicyCandidate{}, &entities.AlgorithmError{
				Reason: fmt.Sprintf("reorder point adjustment did not converge within %d iterations", maxSearchIterations),
			}
		}
		cost, err := ps.PolicyCost(reorder, orderUpTo)
		if err != nil {
			return entities.PolicyCandidate{}, err
		}
		if cost > newsvendor.Cost(reorder+1, ps.params, ps.demand) {
			break
		}
		reorder++
	}

	cost, err := ps.PolicyCost(reorder, orderUpTo)
	if err != nil {
		return entities.PolicyCandidate{}, err
	}
	return entities.PolicyCandidate{ReorderPoint: reorder, OrderUpToLevel: orderUpTo, AverageCost: cost}, nil
}
