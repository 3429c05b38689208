package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplyos/ssopt/pkg/domain/entities"
)

func writeInstancesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "instances.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadInstances(t *testing.T) {
	path := writeInstancesFile(t, `instance_id,holding_cost,stockout_cost,fixed_cost,demand_kind,demand_mean,demand_pmf
example-4-7,1,4,5,poisson,6,
custom,0.5,3,2,explicit,,0.1;0.2;0.3;0.25;0.15
`)

	loader := NewLoader()
	instances, err := loader.LoadInstances(path)
	require.NoError(t, err)
	require.Len(t, instances, 2)

	first := instances[0]
	assert.Equal(t, "example-4-7", first.ID)
	assert.Equal(t, entities.CostParameters{HoldingCost: 1, StockoutCost: 4, FixedCost: 5}, first.Params)
	require.IsType(t, &entities.PoissonDemand{}, first.Demand)
	assert.Equal(t, 6.0, first.Demand.Mean())

	second := instances[1]
	assert.Equal(t, "custom", second.ID)
	assert.Equal(t, 0.5, second.Params.HoldingCost)
	require.IsType(t, &entities.ExplicitDemand{}, second.Demand)
	hi, bounded := second.Demand.Support()
	assert.True(t, bounded)
	assert.Equal(t, 4, hi)
	assert.InDelta(t, 2.15, second.Demand.Mean(), 1e-12)
}

func TestLoadInstances_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			"missing file rows",
			"instance_id,holding_cost,stockout_cost,fixed_cost,demand_kind,demand_mean,demand_pmf\n",
		},
		{
			"header mismatch",
			"id,h,p,k,kind,mean,pmf\na,1,4,5,poisson,6,\n",
		},
		{
			"empty instance id",
			"instance_id,holding_cost,stockout_cost,fixed_cost,demand_kind,demand_mean,demand_pmf\n,1,4,5,poisson,6,\n",
		},
		{
			"bad holding cost",
			"instance_id,holding_cost,stockout_cost,fixed_cost,demand_kind,demand_mean,demand_pmf\na,one,4,5,poisson,6,\n",
		},
		{
			"non-positive fixed cost",
			"instance_id,holding_cost,stockout_cost,fixed_cost,demand_kind,demand_mean,demand_pmf\na,1,4,0,poisson,6,\n",
		},
		{
			"poisson without mean",
			"instance_id,holding_cost,stockout_cost,fixed_cost,demand_kind,demand_mean,demand_pmf\na,1,4,5,poisson,,\n",
		},
		{
			"explicit without pmf",
			"instance_id,holding_cost,stockout_cost,fixed_cost,demand_kind,demand_mean,demand_pmf\na,1,4,5,explicit,,\n",
		},
		{
			"unknown demand kind",
			"instance_id,holding_cost,stockout_cost,fixed_cost,demand_kind,demand_mean,demand_pmf\na,1,4,5,normal,6,\n",
		},
		{
			"bad pmf value",
			"instance_id,holding_cost,stockout_cost,fixed_cost,demand_kind,demand_mean,demand_pmf\na,1,4,5,explicit,,0.5;half\n",
		},
	}

	loader := NewLoader()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeInstancesFile(t, tc.content)
			_, err := loader.LoadInstances(path)
			require.Error(t, err)
		})
	}
}

func TestLoadInstances_MissingFile(t *testing.T) {
	loader := NewLoader()
	_, err := loader.LoadInstances(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}
