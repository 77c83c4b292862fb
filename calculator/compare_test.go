package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fd-calculator/calculator"
	"fd-calculator/domain"
)

func TestCompare_PicksHighestMaturity(t *testing.T) {
	req := domain.ComparisonRequest{
		Scenarios: []domain.CalculationRequest{
			simpleRequest("100", "0", 12),
			simpleRequest("150", "0", 12),
			simpleRequest("120", "0", 12),
		},
	}

	result, err := calculator.Compare(req)
	require.NoError(t, err)

	require.Len(t, result.Scenarios, 3)
	assert.Equal(t, 1, result.BestScenarioIndex)
	assert.Equal(t, "150.00", result.BestScenario.MaturityAmount.StringFixed(2))
	assert.Equal(t, "120.00", result.Scenarios[2].MaturityAmount.StringFixed(2), "results keep input order")
}

func TestCompare_TieKeepsFirst(t *testing.T) {
	req := domain.ComparisonRequest{
		Scenarios: []domain.CalculationRequest{
			simpleRequest("1000", "5", 12),
			simpleRequest("1000", "5", 12),
		},
	}

	result, err := calculator.Compare(req)
	require.NoError(t, err)
	assert.Equal(t, 0, result.BestScenarioIndex)
}

func TestCompare_CommonPrincipal(t *testing.T) {
	req := domain.ComparisonRequest{
		Scenarios: []domain.CalculationRequest{
			simpleRequest("1", "7", 12),
			compoundRequest("999", "8", 12, domain.FrequencyQuarterly),
		},
		CommonPrincipal: nullDec("100000"),
	}

	result, err := calculator.Compare(req)
	require.NoError(t, err)

	assert.Equal(t, "107000.00", result.Scenarios[0].MaturityAmount.StringFixed(2))
	assert.Equal(t, "108243.22", result.Scenarios[1].MaturityAmount.StringFixed(2))
	assert.Equal(t, 1, result.BestScenarioIndex)
	assert.Equal(t, "1", req.Scenarios[0].Principal.String(), "input scenarios are not modified")
}

func TestCompare_Empty(t *testing.T) {
	_, err := calculator.Compare(domain.ComparisonRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyScenarioSet)
}

func TestCompare_TooManyScenarios(t *testing.T) {
	scenarios := make([]domain.CalculationRequest, calculator.MaxScenarios+1)
	for i := range scenarios {
		scenarios[i] = simpleRequest("1000", "5", 12)
	}

	_, err := calculator.Compare(domain.ComparisonRequest{Scenarios: scenarios})
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCompare_InvalidScenarioFailsAll(t *testing.T) {
	bad := simpleRequest("1000", "5", 12)
	bad.Tenure = -1

	_, err := calculator.Compare(domain.ComparisonRequest{
		Scenarios: []domain.CalculationRequest{simpleRequest("1000", "5", 12), bad},
	})
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "scenario 1")
}

func TestCompare_SingleScenario(t *testing.T) {
	result, err := calculator.Compare(domain.ComparisonRequest{
		Scenarios: []domain.CalculationRequest{simpleRequest("5000", "6", 24)},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.BestScenarioIndex)
	assert.True(t, result.BestScenario.MaturityAmount.Equal(result.Scenarios[0].MaturityAmount))
}
