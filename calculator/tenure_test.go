package calculator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fd-calculator/calculator"
	"fd-calculator/domain"
)

func TestTenureInMonths(t *testing.T) {
	assert.Equal(t, 12, calculator.TenureInMonths(12, domain.TenureMonths))
	assert.Equal(t, 24, calculator.TenureInMonths(2, domain.TenureYears))
	assert.Equal(t, 3, calculator.TenureInMonths(90, domain.TenureDays))
	assert.Equal(t, 0, calculator.TenureInMonths(29, domain.TenureDays))
	assert.Equal(t, 12, calculator.TenureInMonths(365, domain.TenureDays))
	assert.Equal(t, 0, calculator.TenureInMonths(5, "WEEKS"))
}

func TestTenureInYears(t *testing.T) {
	assert.Equal(t, "1.50", calculator.TenureInYears(18, domain.TenureMonths).StringFixed(2))
	assert.Equal(t, "0.25", calculator.TenureInYears(90, domain.TenureDays).StringFixed(2))
	assert.Equal(t, "3.00", calculator.TenureInYears(3, domain.TenureYears).StringFixed(2))
}

func TestMaturityDate(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		tenure int
		unit   domain.TenureUnit
		want   time.Time
	}{
		{"days", date(2024, time.January, 1), 90, domain.TenureDays, date(2024, time.March, 31)},
		{"month end clamps in leap year", date(2024, time.January, 31), 1, domain.TenureMonths, date(2024, time.February, 29)},
		{"month end clamps", date(2023, time.January, 31), 1, domain.TenureMonths, date(2023, time.February, 28)},
		{"across year", date(2024, time.November, 30), 3, domain.TenureMonths, date(2025, time.February, 28)},
		{"leap day plus a year", date(2024, time.February, 29), 1, domain.TenureYears, date(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calculator.MaturityDate(tt.start, tt.tenure, tt.unit))
		})
	}
}

func TestBreakdownDatesClampPerMonth(t *testing.T) {
	entries := calculator.SimpleBreakdown(dec("1000"), dec("6"), 3, date(2024, time.January, 31))
	require.Len(t, entries, 3)

	assert.Equal(t, date(2024, time.February, 29), entries[0].Date)
	assert.Equal(t, date(2024, time.March, 31), entries[1].Date)
	assert.Equal(t, date(2024, time.April, 30), entries[2].Date)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
