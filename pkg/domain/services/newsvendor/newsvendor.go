// Package newsvendor solves the single-period inventory problem: the
// expected holding plus stockout cost of entering a period at a given
// inventory level, and the base-stock level minimizing that cost.
package newsvendor

import (
	"fmt"

	"github.com/supplyos/ssopt/pkg/domain/entities"
)

// Defensive bound on the critical-ratio scan. The scan terminates for any
// proper distribution long before this; hitting it means the demand model
// never accumulates the critical probability mass.
const maxCriticalLevel = 1 << 20

// Cost returns the expected one-period holding plus stockout cost when the
// period begins with level units on hand and no reorder arrives before the
// next review.
func Cost(level int, params entities.CostParameters, demand entities.DemandModel) float64 {
	shortage, overage := demand.Loss(level)
	return params.HoldingCost*overage + params.StockoutCost*shortage
}

// Optimal returns the base-stock level minimizing Cost together with the
// cost at that level. The minimizer is the smallest integer y whose CDF
// reaches the critical ratio p/(p+h).
//
// For a demand model whose declared support carries less mass than the
// critical ratio, the level is capped at the top of the support (residual
// mass beyond the support is treated as zero).
func Optimal(params entities.CostParameters, demand entities.DemandModel) (int, float64, error) {
	if err := params.Validate(); err != nil {
		return 0, 0, err
	}
	ratio := params.StockoutCost / (params.StockoutCost + params.HoldingCost)

	level := 0
	for demand.CDF(level) < ratio {
		if hi, bounded := demand.Support(); bounded && level >= hi {
			break
		}
		if level >= maxCriticalLevel {
			return 0, 0, &entities.AlgorithmError{
				Reason: fmt.Sprintf("no inventory level below %d reaches the critical ratio %v", maxCriticalLevel, ratio),
			}
		}
		level++
	}
	return level, Cost(level, params, demand), nil
}
