package entities

import "fmt"

// CostParameters bundles the per-period cost structure of an (s,S) policy
// problem: holding and stockout cost per item per period, and the fixed
// cost charged per order placed.
type CostParameters struct {
	HoldingCost  float64
	StockoutCost float64
	FixedCost    float64
}

// NewCostParameters creates a validated cost parameter bundle. All three
// costs must be strictly positive.
func NewCostParameters(holdingCost, stockoutCost, fixedCost float64) (CostParameters, error) {
	if holdingCost <= 0 {
		return CostParameters{}, &ValidationError{Reason: fmt.Sprintf("holding cost must be positive, got %v", holdingCost)}
	}
	if stockoutCost <= 0 {
		return CostParameters{}, &ValidationError{Reason: fmt.Sprintf("stockout cost must be positive, got %v", stockoutCost)}
	}
	if fixedCost <= 0 {
		return CostParameters{}, &ValidationError{Reason: fmt.Sprintf("fixed cost must be positive, got %v", fixedCost)}
	}
	return CostParameters{
		HoldingCost:  holdingCost,
		StockoutCost: stockoutCost,
		FixedCost:    fixedCost,
	}, nil
}

// Validate re-checks the bundle. It exists so services can fail fast on a
// zero-valued struct constructed without NewCostParameters.
func (c CostParameters) Validate() error {
	_, err := NewCostParameters(c.HoldingCost, c.StockoutCost, c.FixedCost)
	return err
}

// PolicyCandidate is an (s,S) policy together with its exact long-run
// average cost per period. ReorderPoint is always strictly below
// OrderUpToLevel.
type PolicyCandidate struct {
	ReorderPoint   int
	OrderUpToLevel int
	AverageCost    float64
}

func (p PolicyCandidate) String() string {
	return fmt.Sprintf("(s=%d, S=%d, g=%.6f)", p.ReorderPoint, p.OrderUpToLevel, p.AverageCost)
}

// ProblemInstance is a named (s,S) optimization problem: a cost structure
// plus a demand distribution.
type ProblemInstance struct {
	ID     string
	Params CostParameters
	Demand DemandModel
}
