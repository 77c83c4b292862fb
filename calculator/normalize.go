package calculator

import (
	"strings"

	"fd-calculator/domain"
)

const (
	DefaultCalculationType      = domain.CalculationCompound
	DefaultCompoundingFrequency = domain.FrequencyQuarterly
)

var frequencyAliases = map[string]domain.CompoundingFrequency{
	"DAILY":         domain.FrequencyDaily,
	"MONTHLY":       domain.FrequencyMonthly,
	"QUARTERLY":     domain.FrequencyQuarterly,
	"SEMI_ANNUALLY": domain.FrequencySemiAnnually,
	"HALF_YEARLY":   domain.FrequencySemiAnnually,
	"ANNUALLY":      domain.FrequencyAnnually,
	"YEARLY":        domain.FrequencyAnnually,
}

// ParseCalculationType maps a product's free-text calculation method to a
// calculation type. Anything that does not mention SIMPLE is COMPOUND.
func ParseCalculationType(method string) domain.CalculationType {
	if strings.Contains(strings.ToUpper(method), string(domain.CalculationSimple)) {
		return domain.CalculationSimple
	}
	return DefaultCalculationType
}

// ParseCompoundingFrequency maps a product's payout frequency to a
// compounding frequency; unknown values fall back to QUARTERLY.
func ParseCompoundingFrequency(frequency string) domain.CompoundingFrequency {
	if f, ok := frequencyAliases[strings.ToUpper(strings.TrimSpace(frequency))]; ok {
		return f
	}
	return DefaultCompoundingFrequency
}
