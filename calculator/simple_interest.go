package calculator

import (
	"time"

	"github.com/shopspring/decimal"

	"fd-calculator/domain"
)

// SimpleInterest returns principal * rate/100 * tenure-in-years, unrounded.
// The division happens once so month tenures stay exact.
func SimpleInterest(principal, ratePercent decimal.Decimal, tenure int, unit domain.TenureUnit) decimal.Decimal {
	divisor, ok := unitsPerYear[unit]
	if !ok {
		return decimal.Zero
	}
	numerator := principal.Mul(ratePercent).Mul(decimal.NewFromInt(int64(tenure)))
	return numerator.DivRound(hundred.Mul(decimal.NewFromInt(divisor)), internalPrecision)
}

// SimpleBreakdown spreads the simple interest for tenureInMonths evenly over
// the months. Nothing is produced outside 1..MaxBreakdownMonths.
func SimpleBreakdown(principal, ratePercent decimal.Decimal, tenureInMonths int, start time.Time) []domain.MonthlyBreakdown {
	if tenureInMonths < 1 || tenureInMonths > MaxBreakdownMonths {
		return nil
	}

	total := SimpleInterest(principal, ratePercent, tenureInMonths, domain.TenureMonths)
	monthly := total.DivRound(decimal.NewFromInt(int64(tenureInMonths)), internalPrecision)

	entries := make([]domain.MonthlyBreakdown, 0, tenureInMonths)
	balance := principal
	for month := 1; month <= tenureInMonths; month++ {
		opening := balance
		balance = balance.Add(monthly)
		entries = append(entries, breakdownEntry(month, start, principal, opening, balance))
	}
	return entries
}

func breakdownEntry(month int, start time.Time, principal, opening, closing decimal.Decimal) domain.MonthlyBreakdown {
	return domain.MonthlyBreakdown{
		Month:              month,
		Date:               addMonths(start, month),
		OpeningBalance:     opening.Round(moneyPlaces),
		InterestEarned:     closing.Sub(opening).Round(moneyPlaces),
		ClosingBalance:     closing.Round(moneyPlaces),
		CumulativeInterest: closing.Sub(principal).Round(moneyPlaces),
	}
}
