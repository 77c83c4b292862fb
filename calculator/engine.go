// Package calculator is the fixed-deposit interest engine. Every function is
// a pure computation over its inputs: no I/O, no shared state, no clock.
package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fd-calculator/domain"
)

// Calculate validates req and computes interest, TDS, maturity and, for
// tenures up to MaxBreakdownMonths, the monthly breakdown.
func Calculate(req domain.CalculationRequest) (domain.CalculationResult, error) {
	if req.CalculationType == domain.CalculationCompound && req.CompoundingFrequency == "" {
		req.CompoundingFrequency = DefaultCompoundingFrequency
	}
	if err := Validate(req); err != nil {
		return domain.CalculationResult{}, err
	}

	tenureInMonths := TenureInMonths(req.Tenure, req.TenureUnit)
	if err := CheckConstraints(req.Principal, tenureInMonths, req.Constraints); err != nil {
		return domain.CalculationResult{}, err
	}

	base := SelectBaseRate(req.InterestRate, req.ProductRate)
	rate := ResolveRate(base, req.CustomerClassifications, req.CustomInterestRate)

	var (
		interest  decimal.Decimal
		breakdown []domain.MonthlyBreakdown
		err       error
	)
	switch req.CalculationType {
	case domain.CalculationSimple:
		interest = SimpleInterest(req.Principal, rate.EffectiveRate, req.Tenure, req.TenureUnit)
		breakdown = SimpleBreakdown(req.Principal, rate.EffectiveRate, tenureInMonths, req.StartDate)
	case domain.CalculationCompound:
		interest, err = CompoundInterest(req.Principal, rate.EffectiveRate, req.Tenure, req.TenureUnit, req.CompoundingFrequency)
		if err != nil {
			return domain.CalculationResult{}, fmt.Errorf("compound interest: %w", err)
		}
		breakdown, err = CompoundBreakdown(req.Principal, rate.EffectiveRate, tenureInMonths, req.CompoundingFrequency, req.StartDate)
		if err != nil {
			return domain.CalculationResult{}, fmt.Errorf("compound breakdown: %w", err)
		}
	}

	interest = interest.Round(moneyPlaces)
	tdsRate := decimal.Zero
	if req.TDSRate.Valid {
		tdsRate = req.TDSRate.Decimal
	}
	tds := interest.Mul(tdsRate).DivRound(hundred, moneyPlaces)
	netInterest := interest.Sub(tds)

	result := domain.CalculationResult{
		PrincipalAmount:         req.Principal,
		BaseInterestRate:        rate.BaseRate,
		AdditionalInterestRate:  rate.AdditionalRate,
		InterestRate:            rate.EffectiveRate,
		RateCapped:              rate.Capped,
		Tenure:                  req.Tenure,
		TenureUnit:              req.TenureUnit,
		TenureInMonths:          tenureInMonths,
		TenureInYears:           TenureInYears(req.Tenure, req.TenureUnit),
		CalculationType:         req.CalculationType,
		InterestEarned:          interest,
		TDSRate:                 tdsRate,
		TDSAmount:               tds,
		NetInterest:             netInterest,
		MaturityAmount:          req.Principal.Add(netInterest).Round(moneyPlaces),
		StartDate:               req.StartDate,
		MaturityDate:            MaturityDate(req.StartDate, req.Tenure, req.TenureUnit),
		CustomerClassifications: rate.Classifications,
		MonthlyBreakdown:        breakdown,
	}
	if req.CalculationType == domain.CalculationCompound {
		result.CompoundingFrequency = req.CompoundingFrequency
	}
	return result, nil
}

// Validate rejects requests the engine cannot compute with a *domain.ValidationError.
func Validate(req domain.CalculationRequest) error {
	if !req.Principal.IsPositive() {
		return domain.NewValidationError("principalAmount", "must be greater than zero")
	}
	if req.Principal.GreaterThan(MaxPrincipalAmount) {
		return domain.NewValidationError("principalAmount", "exceeds the maximum of %s", MaxPrincipalAmount)
	}
	if req.InterestRate.IsNegative() {
		return domain.NewValidationError("interestRate", "must not be negative")
	}
	if req.InterestRate.GreaterThan(MaxInterestRate) {
		return domain.NewValidationError("interestRate", "exceeds the maximum of %s%%", MaxInterestRate)
	}
	if req.ProductRate.Valid && req.ProductRate.Decimal.IsNegative() {
		return domain.NewValidationError("interestRate", "product rate must not be negative")
	}
	if req.Tenure <= 0 {
		return domain.NewValidationError("tenure", "must be greater than zero")
	}
	if !isKnownUnit(req.TenureUnit) {
		return domain.NewValidationError("tenureUnit", "unknown unit %q", req.TenureUnit)
	}
	if TenureInMonths(req.Tenure, req.TenureUnit) > MaxTenureMonths {
		return domain.NewValidationError("tenure", "exceeds the maximum of %d months", MaxTenureMonths)
	}

	switch req.CalculationType {
	case domain.CalculationSimple:
	case domain.CalculationCompound:
		if !isKnownFrequency(req.CompoundingFrequency) {
			return domain.NewValidationError("compoundingFrequency", "unknown frequency %q", req.CompoundingFrequency)
		}
	default:
		return domain.NewValidationError("calculationType", "unknown type %q", req.CalculationType)
	}

	if req.TDSRate.Valid && (req.TDSRate.Decimal.IsNegative() || req.TDSRate.Decimal.GreaterThan(MaxTDSRate)) {
		return domain.NewValidationError("tdsRate", "must be between 0 and %s", MaxTDSRate)
	}
	if req.CustomInterestRate.Valid && req.CustomInterestRate.Decimal.IsNegative() {
		return domain.NewValidationError("customInterestRate", "must not be negative")
	}
	return nil
}
