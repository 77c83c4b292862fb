package calculator

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"fd-calculator/domain"
)

// Compare calculates every scenario independently and picks the one with the
// strictly greatest maturity amount; on ties the lowest index wins. A common
// principal, when given, replaces each scenario's principal.
func Compare(req domain.ComparisonRequest) (domain.ComparisonResult, error) {
	if len(req.Scenarios) == 0 {
		return domain.ComparisonResult{}, domain.ErrEmptyScenarioSet
	}
	if len(req.Scenarios) > MaxScenarios {
		return domain.ComparisonResult{}, domain.NewValidationError("scenarios", "at most %d scenarios can be compared", MaxScenarios)
	}

	results := make([]domain.CalculationResult, len(req.Scenarios))
	var g errgroup.Group
	for i, scenario := range req.Scenarios {
		if req.CommonPrincipal.Valid {
			scenario.Principal = req.CommonPrincipal.Decimal
		}
		g.Go(func() error {
			result, err := Calculate(scenario)
			if err != nil {
				return fmt.Errorf("scenario %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.ComparisonResult{}, err
	}

	best := 0
	for i := 1; i < len(results); i++ {
		if results[i].MaturityAmount.GreaterThan(results[best].MaturityAmount) {
			best = i
		}
	}

	return domain.ComparisonResult{
		Scenarios:         results,
		BestScenario:      results[best],
		BestScenarioIndex: best,
	}, nil
}
