package calculator

import (
	"time"

	"github.com/shopspring/decimal"

	"fd-calculator/domain"
)

// unitsPerYear is the canonical divisor used to turn a tenure into years.
var unitsPerYear = map[domain.TenureUnit]int64{
	domain.TenureDays:   365,
	domain.TenureMonths: 12,
	domain.TenureYears:  1,
}

func isKnownUnit(unit domain.TenureUnit) bool {
	_, ok := unitsPerYear[unit]
	return ok
}

// TenureInMonths converts a tenure to whole months: days/30, months as-is,
// years*12. Unknown units give 0.
func TenureInMonths(tenure int, unit domain.TenureUnit) int {
	switch unit {
	case domain.TenureDays:
		return tenure / DaysPerMonth
	case domain.TenureMonths:
		return tenure
	case domain.TenureYears:
		return tenure * 12
	}
	return 0
}

// TenureInYears is the reported tenure in years, rounded to 2 places.
func TenureInYears(tenure int, unit domain.TenureUnit) decimal.Decimal {
	divisor, ok := unitsPerYear[unit]
	if !ok {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(tenure)).DivRound(decimal.NewFromInt(divisor), moneyPlaces)
}

// MaturityDate adds the tenure to start on the calendar. Month and year
// arithmetic clamps to the last day of the target month (Jan 31 + 1 month
// is Feb 28/29), matching how the rest of the platform computes dates.
func MaturityDate(start time.Time, tenure int, unit domain.TenureUnit) time.Time {
	switch unit {
	case domain.TenureDays:
		return start.AddDate(0, 0, tenure)
	case domain.TenureMonths:
		return addMonths(start, tenure)
	case domain.TenureYears:
		return addMonths(start, tenure*12)
	}
	return start
}

func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
