package calculator

import (
	"strconv"

	"github.com/shopspring/decimal"

	"fd-calculator/domain"
)

// CheckConstraints validates principal and tenure against a product's
// bounds. A missing bound is no limit on that side; nil constraints pass.
func CheckConstraints(principal decimal.Decimal, tenureInMonths int, c *domain.ProductConstraints) error {
	if c == nil {
		return nil
	}

	if c.MinPrincipal.Valid && principal.LessThan(c.MinPrincipal.Decimal) {
		return principalOutOfRange(domain.BoundMinimum, c.MinPrincipal.Decimal, principal, c.ProductCode)
	}
	if c.MaxPrincipal.Valid && principal.GreaterThan(c.MaxPrincipal.Decimal) {
		return principalOutOfRange(domain.BoundMaximum, c.MaxPrincipal.Decimal, principal, c.ProductCode)
	}

	if c.MinTenureMonths != nil && tenureInMonths < *c.MinTenureMonths {
		return tenureOutOfRange(domain.BoundMinimum, *c.MinTenureMonths, tenureInMonths, c.ProductCode)
	}
	if c.MaxTenureMonths != nil && tenureInMonths > *c.MaxTenureMonths {
		return tenureOutOfRange(domain.BoundMaximum, *c.MaxTenureMonths, tenureInMonths, c.ProductCode)
	}
	return nil
}

func principalOutOfRange(bound string, limit, actual decimal.Decimal, productCode string) error {
	return &domain.OutOfRangeError{
		Field:       "principal",
		Bound:       bound,
		Limit:       limit.String(),
		Actual:      actual.String(),
		ProductCode: productCode,
	}
}

func tenureOutOfRange(bound string, limit, actual int, productCode string) error {
	return &domain.OutOfRangeError{
		Field:       "tenure",
		Bound:       bound,
		Limit:       strconv.Itoa(limit),
		Actual:      strconv.Itoa(actual),
		ProductCode: productCode,
	}
}
