package calculator

import "github.com/shopspring/decimal"

const (
	MaxTenureMonths    = 600 // 50 years
	MaxBreakdownMonths = 120 // breakdowns are only produced up to 10 years
	MaxScenarios       = 20
	MaxClassifications = 2
	DaysPerMonth       = 30

	// digits kept on intermediate values before the final 2-dp rounding
	internalPrecision int32 = 18
	moneyPlaces       int32 = 2
)

var (
	MaxPrincipalAmount = decimal.NewFromInt(1_000_000_000)
	MaxInterestRate    = decimal.NewFromInt(100)
	MaxTDSRate         = decimal.NewFromInt(100)

	// Bonus policy: 0.25 points per classification, at most 2.0 points.
	ClassificationBonusStep = decimal.RequireFromString("0.25")
	MaxAdditionalRate       = decimal.NewFromInt(2)

	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)
