// Package renewal computes the discrete renewal arrays used by the exact
// (s,S) cost formula: the renewal density m and the renewal function M of
// the demand distribution, truncated to the policy gap S-s.
package renewal

import (
	"fmt"

	"github.com/supplyos/ssopt/pkg/domain/entities"
)

// Arrays returns the renewal density m[0..K-1] and renewal function M[0..K]
// for a demand pmf truncated to horizon K = len(pmf).
//
//	m[0] = 1/(1 - pmf[0])
//	m[j] = m[0] * sum_{l=1..j} pmf[l]*m[j-l]
//	M[0] = 0, M[j] = M[j-1] + m[j-1]
//
// M[j] is built from m by running summation so the renewal identity
// M[j]-M[j-1] = m[j-1] holds exactly, not just algebraically.
func Arrays(pmf []float64) (m, M []float64, err error) {
	if len(pmf) == 0 {
		return nil, nil, &entities.ValidationError{Reason: "renewal horizon must be at least 1"}
	}
	if pmf[0] >= 1 {
		return nil, nil, &entities.NumericalDomainError{
			Reason: fmt.Sprintf("demand pmf has mass %v at zero, renewal density is undefined", pmf[0]),
		}
	}

	horizon := len(pmf)
	m = make([]float64, horizon)
	m[0] = 1 / (1 - pmf[0])
	for j := 1; j < horizon; j++ {
		var sum float64
		for l := 1; l <= j; l++ {
			sum += pmf[l] * m[j-l]
		}
		m[j] = m[0] * sum
	}

	M = make([]float64, horizon+1)
	for j := 1; j <= horizon; j++ {
		M[j] = M[j-1] + m[j-1]
	}
	return m, M, nil
}
