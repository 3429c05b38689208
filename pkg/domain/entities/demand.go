package entities

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// DemandModel describes a discrete demand distribution over {0, 1, 2, ...}.
// Implementations are pure: every method is a function of the distribution
// parameters and its arguments only.
type DemandModel interface {
	// PMF returns the probability masses of demand 0..horizon-1.
	PMF(horizon int) ([]float64, error)

	// CDF returns the probability that demand is at most d.
	CDF(d int) float64

	// Loss returns the expected shortage (demand beyond level) and expected
	// overage (level beyond demand) for a period starting with level units
	// on hand.
	Loss(level int) (shortage, overage float64)

	// Mean returns the expected demand per period.
	Mean() float64

	// Support returns the largest demand value carrying probability mass
	// and whether the support is bounded at all.
	Support() (hi int, bounded bool)
}

// PoissonDemand models per-period demand as Poisson with a given mean.
type PoissonDemand struct {
	dist distuv.Poisson
}

// NewPoissonDemand creates a Poisson demand model. The mean must be
// non-negative.
func NewPoissonDemand(mean float64) (*PoissonDemand, error) {
	if mean < 0 || math.IsNaN(mean) {
		return nil, &ValidationError{Reason: fmt.Sprintf("demand mean must be non-negative, got %v", mean)}
	}
	return &PoissonDemand{dist: distuv.Poisson{Lambda: mean}}, nil
}

// PMF returns the Poisson probability masses of demand 0..horizon-1.
func (p *PoissonDemand) PMF(horizon int) ([]float64, error) {
	if horizon < 0 {
		return nil, &ValidationError{Reason: fmt.Sprintf("pmf horizon must be non-negative, got %d", horizon)}
	}
	pmf := make([]float64, horizon)
	for k := range pmf {
		pmf[k] = p.prob(k)
	}
	return pmf, nil
}

// CDF returns P(demand <= d).
func (p *PoissonDemand) CDF(d int) float64 {
	if d < 0 {
		return 0
	}
	if p.dist.Lambda == 0 {
		return 1
	}
	return p.dist.CDF(float64(d))
}

// Loss evaluates the Poisson loss function and its complement at level.
func (p *PoissonDemand) Loss(level int) (shortage, overage float64) {
	y := float64(level)
	mu := p.dist.Lambda
	cdf := p.CDF(level)
	mass := p.prob(level)
	shortage = -(y-mu)*(1-cdf) + mu*mass
	overage = (y-mu)*cdf + mu*mass
	return shortage, overage
}

// prob returns the Poisson mass at k. The zero-mean distribution is handled
// directly: distuv's log-space evaluation is NaN at lambda 0.
func (p *PoissonDemand) prob(k int) float64 {
	if k < 0 {
		return 0
	}
	if p.dist.Lambda == 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	return p.dist.Prob(float64(k))
}

// Mean returns the Poisson mean.
func (p *PoissonDemand) Mean() float64 {
	return p.dist.Lambda
}

// Support reports an unbounded support.
func (p *PoissonDemand) Support() (int, bool) {
	return 0, false
}

// ExplicitDemand models per-period demand with a caller-supplied pmf over
// 0..supportHi. The pmf may sum to less than one; residual mass beyond the
// declared support is treated as zero.
type ExplicitDemand struct {
	pmf  []float64
	mean float64
}

// Tolerance for the pmf total exceeding one due to rounding in the input.
const pmfTotalTolerance = 1e-9

// NewExplicitDemand creates a demand model from pmf values for demand
// 0..supportHi. The pmf must have exactly supportHi+1 entries, each
// non-negative, together summing to at most one.
func NewExplicitDemand(supportHi int, pmf []float64) (*ExplicitDemand, error) {
	if supportHi < 0 {
		return nil, &ValidationError{Reason: fmt.Sprintf("demand support upper limit must be non-negative, got %d", supportHi)}
	}
	if len(pmf) != supportHi+1 {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("demand pmf must have %d entries for support 0..%d, got %d", supportHi+1, supportHi, len(pmf)),
		}
	}
	var total, mean float64
	for d, mass := range pmf {
		if mass < 0 || math.IsNaN(mass) {
			return nil, &ValidationError{Reason: fmt.Sprintf("demand pmf value at %d must be non-negative, got %v", d, mass)}
		}
		total += mass
		mean += float64(d) * mass
	}
	if total > 1+pmfTotalTolerance {
		return nil, &ValidationError{Reason: fmt.Sprintf("demand pmf values sum to %v, which exceeds 1", total)}
	}
	copied := make([]float64, len(pmf))
	copy(copied, pmf)
	return &ExplicitDemand{pmf: copied, mean: mean}, nil
}

// PMF returns the first horizon pmf entries. The horizon must not exceed
// the declared support.
func (e *ExplicitDemand) PMF(horizon int) ([]float64, error) {
	if horizon < 0 {
		return nil, &ValidationError{Reason: fmt.Sprintf("pmf horizon must be non-negative, got %d", horizon)}
	}
	if horizon > len(e.pmf) {
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("pmf horizon %d exceeds demand support 0..%d", horizon, len(e.pmf)-1),
		}
	}
	pmf := make([]float64, horizon)
	copy(pmf, e.pmf[:horizon])
	return pmf, nil
}

// CDF returns P(demand <= d) under the declared pmf.
func (e *ExplicitDemand) CDF(d int) float64 {
	if d < 0 {
		return 0
	}
	if d >= len(e.pmf) {
		d = len(e.pmf) - 1
	}
	var total float64
	for _, mass := range e.pmf[:d+1] {
		total += mass
	}
	return total
}

// Loss returns the expected shortage and overage at level, summed over the
// declared support.
func (e *ExplicitDemand) Loss(level int) (shortage, overage float64) {
	for d, mass := range e.pmf {
		if d > level {
			shortage += float64(d-level) * mass
		} else {
			overage += float64(level-d) * mass
		}
	}
	return shortage, overage
}

// Mean returns the expected demand under the declared pmf.
func (e *ExplicitDemand) Mean() float64 {
	return e.mean
}

// Support returns the declared upper limit of the demand support.
func (e *ExplicitDemand) Support() (int, bool) {
	return len(e.pmf) - 1, true
}
