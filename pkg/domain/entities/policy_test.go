package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCostParameters(t *testing.T) {
	params, err := NewCostParameters(1, 9, 64)
	require.NoError(t, err)
	assert.Equal(t, CostParameters{HoldingCost: 1, StockoutCost: 9, FixedCost: 64}, params)

	testCases := []struct {
		name     string
		holding  float64
		stockout float64
		fixed    float64
	}{
		{"zero holding cost", 0, 9, 64},
		{"negative holding cost", -1, 9, 64},
		{"zero stockout cost", 1, 0, 64},
		{"zero fixed cost", 1, 9, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCostParameters(tc.holding, tc.stockout, tc.fixed)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestCostParameters_Validate(t *testing.T) {
	assert.Error(t, CostParameters{}.Validate())
	assert.NoError(t, CostParameters{HoldingCost: 1, StockoutCost: 4, FixedCost: 5}.Validate())
}

func TestPolicyCandidate_String(t *testing.T) {
	candidate := PolicyCandidate{ReorderPoint: 4, OrderUpToLevel: 10, AverageCost: 8.034112}
	assert.Equal(t, "(s=4, S=10, g=8.034112)", candidate.String())
}
