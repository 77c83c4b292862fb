package calculator

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fd-calculator/domain"
)

var periodsPerYear = map[domain.CompoundingFrequency]int64{
	domain.FrequencyDaily:        365,
	domain.FrequencyMonthly:      12,
	domain.FrequencyQuarterly:    4,
	domain.FrequencySemiAnnually: 2,
	domain.FrequencyAnnually:     1,
}

func isKnownFrequency(frequency domain.CompoundingFrequency) bool {
	_, ok := periodsPerYear[frequency]
	return ok
}

// CompoundInterest returns principal*(1+r/(100n))^(n*t) - principal, unrounded.
func CompoundInterest(principal, ratePercent decimal.Decimal, tenure int, unit domain.TenureUnit, frequency domain.CompoundingFrequency) (decimal.Decimal, error) {
	divisor, ok := unitsPerYear[unit]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown tenure unit %q", unit)
	}
	n, ok := periodsPerYear[frequency]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown compounding frequency %q", frequency)
	}

	periods := decimal.NewFromInt(n * int64(tenure)).DivRound(decimal.NewFromInt(divisor), internalPrecision)
	maturity, err := compound(principal, ratePercent, n, periods)
	if err != nil {
		return decimal.Zero, err
	}
	return maturity.Sub(principal), nil
}

// CompoundBreakdown reports the running compounded balance month by month.
// The balance after m months is principal*(1+r/(100n))^(n*m/12), so the
// interest of each month is the growth of that curve, not an even share.
func CompoundBreakdown(principal, ratePercent decimal.Decimal, tenureInMonths int, frequency domain.CompoundingFrequency, start time.Time) ([]domain.MonthlyBreakdown, error) {
	if tenureInMonths < 1 || tenureInMonths > MaxBreakdownMonths {
		return nil, nil
	}
	n, ok := periodsPerYear[frequency]
	if !ok {
		return nil, fmt.Errorf("unknown compounding frequency %q", frequency)
	}

	entries := make([]domain.MonthlyBreakdown, 0, tenureInMonths)
	twelve := decimal.NewFromInt(12)
	balance := principal
	for month := 1; month <= tenureInMonths; month++ {
		periods := decimal.NewFromInt(n * int64(month)).DivRound(twelve, internalPrecision)
		closing, err := compound(principal, ratePercent, n, periods)
		if err != nil {
			return nil, fmt.Errorf("month %d: %w", month, err)
		}
		entries = append(entries, breakdownEntry(month, start, principal, balance, closing))
		balance = closing
	}
	return entries, nil
}

func compound(principal, ratePercent decimal.Decimal, n int64, periods decimal.Decimal) (decimal.Decimal, error) {
	periodic := ratePercent.DivRound(hundred.Mul(decimal.NewFromInt(n)), internalPrecision)
	factor, err := one.Add(periodic).PowWithPrecision(periods, internalPrecision)
	if err != nil {
		return decimal.Zero, fmt.Errorf("compounding factor: %w", err)
	}
	return principal.Mul(factor), nil
}
