package newsvendor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplyos/ssopt/pkg/domain/entities"
)

func poissonParams(t *testing.T) (entities.CostParameters, entities.DemandModel) {
	t.Helper()
	params, err := entities.NewCostParameters(1, 4, 5)
	require.NoError(t, err)
	demand, err := entities.NewPoissonDemand(6)
	require.NoError(t, err)
	return params, demand
}

func TestCost_Poisson(t *testing.T) {
	params, demand := poissonParams(t)

	// h*overage + p*shortage at level 4 for mean 6.
	assert.InDelta(t, 1*0.23300270460663786+4*2.233002704606638, Cost(4, params, demand), 1e-9)
}

func TestOptimal_Poisson(t *testing.T) {
	params, demand := poissonParams(t)

	level, cost, err := Optimal(params, demand)
	require.NoError(t, err)

	// Critical ratio 4/5 = 0.8 falls between CDF(7) and CDF(8).
	assert.Equal(t, 8, level)
	assert.InDelta(t, 3.570106945770942, cost, 1e-9)
}

func TestOptimal_Explicit(t *testing.T) {
	params, err := entities.NewCostParameters(1, 3, 2)
	require.NoError(t, err)
	demand, err := entities.NewExplicitDemand(4, []float64{0.1, 0.2, 0.3, 0.25, 0.15})
	require.NoError(t, err)

	level, cost, err := Optimal(params, demand)
	require.NoError(t, err)

	// Critical ratio 0.75; running CDF is 0.1, 0.3, 0.6, 0.85, 1.0.
	assert.Equal(t, 3, level)
	assert.InDelta(t, 1.45, cost, 1e-12)
}

func TestOptimal_CapsAtDeclaredSupport(t *testing.T) {
	params, err := entities.NewCostParameters(1, 99, 2)
	require.NoError(t, err)
	// Total mass 0.6 never reaches the critical ratio 0.99; the level is
	// capped at the top of the support instead of scanning forever.
	demand, err := entities.NewExplicitDemand(2, []float64{0.2, 0.2, 0.2})
	require.NoError(t, err)

	level, _, err := Optimal(params, demand)
	require.NoError(t, err)
	assert.Equal(t, 2, level)
}

func TestOptimal_InvalidParameters(t *testing.T) {
	_, demand := poissonParams(t)

	_, _, err := Optimal(entities.CostParameters{}, demand)
	var validationErr *entities.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
