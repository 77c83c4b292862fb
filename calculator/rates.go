package calculator

import (
	"strings"

	"github.com/shopspring/decimal"
)

type RateResolution struct {
	BaseRate        decimal.Decimal
	AdditionalRate  decimal.Decimal
	EffectiveRate   decimal.Decimal
	Classifications []string
	Capped          bool
}

// NormalizeClassifications trims and upper-cases the codes, drops blanks and
// duplicates (first occurrence wins) and keeps at most MaxClassifications.
func NormalizeClassifications(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(codes))
	normalized := make([]string, 0, MaxClassifications)
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		normalized = append(normalized, code)
		if len(normalized) == MaxClassifications {
			break
		}
	}
	return normalized
}

// ClassificationBonus is 0.25 points per distinct classification, capped at
// MaxAdditionalRate. A flat placeholder policy, not a tiered schedule.
func ClassificationBonus(codes []string) decimal.Decimal {
	applied := NormalizeClassifications(codes)
	bonus := ClassificationBonusStep.Mul(decimal.NewFromInt(int64(len(applied))))
	return decimal.Min(bonus, MaxAdditionalRate)
}

// SelectBaseRate prefers the rate resolved from the product over the rate
// supplied by the caller.
func SelectBaseRate(callerRate decimal.Decimal, productRate decimal.NullDecimal) decimal.Decimal {
	if productRate.Valid {
		return productRate.Decimal
	}
	return callerRate
}

// ResolveRate layers the override or the classification bonus on top of
// base. An override above base+MaxAdditionalRate is capped, not rejected.
func ResolveRate(base decimal.Decimal, classifications []string, override decimal.NullDecimal) RateResolution {
	res := RateResolution{
		BaseRate:        base,
		AdditionalRate:  decimal.Zero,
		EffectiveRate:   base,
		Classifications: NormalizeClassifications(classifications),
	}

	if override.Valid {
		ceiling := base.Add(MaxAdditionalRate)
		if override.Decimal.LessThanOrEqual(ceiling) {
			res.EffectiveRate = override.Decimal
			res.AdditionalRate = override.Decimal.Sub(base)
		} else {
			res.EffectiveRate = ceiling
			res.AdditionalRate = MaxAdditionalRate
			res.Capped = true
		}
		return res
	}

	res.AdditionalRate = ClassificationBonus(res.Classifications)
	res.EffectiveRate = base.Add(res.AdditionalRate)
	return res
}
