package calculator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fd-calculator/calculator"
	"fd-calculator/domain"
)

func TestSimpleInterest(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		rate      string
		tenure    int
		unit      domain.TenureUnit
		want      string
	}{
		{"one year in months", "100000", "7", 12, domain.TenureMonths, "7000.00"},
		{"two years", "100000", "7", 2, domain.TenureYears, "14000.00"},
		{"365 days", "100000", "7", 365, domain.TenureDays, "7000.00"},
		{"90 days", "10000", "6", 90, domain.TenureDays, "147.95"},
		{"odd months", "25000", "6.5", 7, domain.TenureMonths, "947.92"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculator.SimpleInterest(dec(tt.principal), dec(tt.rate), tt.tenure, tt.unit)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestCompoundInterest(t *testing.T) {
	tests := []struct {
		name      string
		frequency domain.CompoundingFrequency
		tenure    int
		unit      domain.TenureUnit
		want      string
	}{
		{"quarterly one year", domain.FrequencyQuarterly, 12, domain.TenureMonths, "8243.22"},
		{"annually one year", domain.FrequencyAnnually, 1, domain.TenureYears, "8000.00"},
		{"annually two years", domain.FrequencyAnnually, 24, domain.TenureMonths, "16640.00"},
		{"semi annually one year", domain.FrequencySemiAnnually, 12, domain.TenureMonths, "8160.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calculator.CompoundInterest(dec("100000"), dec("8"), tt.tenure, tt.unit, tt.frequency)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestCompoundInterest_FractionalPeriods(t *testing.T) {
	// 6 months of quarterly compounding is exactly two periods.
	got, err := calculator.CompoundInterest(dec("100000"), dec("8"), 6, domain.TenureMonths, domain.FrequencyQuarterly)
	require.NoError(t, err)
	assert.Equal(t, "4040.00", got.StringFixed(2))

	// One month of quarterly compounding sits between zero and one period.
	got, err = calculator.CompoundInterest(dec("100000"), dec("8"), 1, domain.TenureMonths, domain.FrequencyQuarterly)
	require.NoError(t, err)
	assert.True(t, got.IsPositive())
	assert.True(t, got.LessThan(dec("2000")))
}

func TestCompoundInterest_UnknownFrequency(t *testing.T) {
	_, err := calculator.CompoundInterest(dec("100"), dec("8"), 12, domain.TenureMonths, "WEEKLY")
	assert.Error(t, err)
}

func TestSimpleBreakdown(t *testing.T) {
	start := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	entries := calculator.SimpleBreakdown(dec("100000"), dec("12"), 6, start)
	require.Len(t, entries, 6)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Month)
		assert.Equal(t, "1000.00", e.InterestEarned.StringFixed(2))
	}
	assert.Equal(t, "100000.00", entries[0].OpeningBalance.StringFixed(2))
	assert.Equal(t, "106000.00", entries[5].ClosingBalance.StringFixed(2))
	assert.Equal(t, "6000.00", entries[5].CumulativeInterest.StringFixed(2))
	assert.Equal(t, time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC), entries[0].Date)
}

func TestSimpleBreakdown_OutOfRange(t *testing.T) {
	start := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, calculator.SimpleBreakdown(dec("1000"), dec("5"), 0, start))
	assert.Nil(t, calculator.SimpleBreakdown(dec("1000"), dec("5"), 121, start))
}

func TestCompoundBreakdown_Monthly(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	entries, err := calculator.CompoundBreakdown(dec("100000"), dec("12"), 12, domain.FrequencyMonthly, start)
	require.NoError(t, err)
	require.Len(t, entries, 12)

	assert.Equal(t, "1000.00", entries[0].InterestEarned.StringFixed(2))
	assert.Equal(t, "1010.00", entries[1].InterestEarned.StringFixed(2))
	assert.Equal(t, "112682.50", entries[11].ClosingBalance.StringFixed(2))

	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i].OpeningBalance.Equal(entries[i-1].ClosingBalance), "month %d", i+1)
	}
}

func TestCompoundBreakdown_QuarterlyCurve(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	entries, err := calculator.CompoundBreakdown(dec("100000"), dec("8"), 12, domain.FrequencyQuarterly, start)
	require.NoError(t, err)

	assert.Equal(t, "102000.00", entries[2].ClosingBalance.StringFixed(2))
	assert.Equal(t, "104040.00", entries[5].ClosingBalance.StringFixed(2))
	assert.Equal(t, "108243.22", entries[11].ClosingBalance.StringFixed(2))
	assert.Equal(t, "8243.22", entries[11].CumulativeInterest.StringFixed(2))
}
