package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyScenarioSet = errors.New("no scenarios to compare")
	ErrProductNotFound  = errors.New("product not found")
)

// ValidationError reports a malformed or out-of-range request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

const (
	BoundMinimum = "minimum"
	BoundMaximum = "maximum"
)

// OutOfRangeError reports a principal or tenure outside a product's bounds.
type OutOfRangeError struct {
	Field       string // "principal" or "tenure"
	Bound       string // BoundMinimum or BoundMaximum
	Limit       string
	Actual      string
	ProductCode string
}

func (e *OutOfRangeError) Error() string {
	verb := "is below"
	if e.Bound == BoundMaximum {
		verb = "exceeds"
	}
	unit := ""
	if e.Field == "tenure" {
		unit = " months"
	}
	return fmt.Sprintf("%s %s%s %s %s %s%s for product %s",
		e.Field, e.Actual, unit, verb, e.Bound, e.Limit, unit, e.ProductCode)
}

// UpstreamLookupError wraps a failed call to the product or customer service.
type UpstreamLookupError struct {
	Service string
	Op      string
	Err     error
}

func (e *UpstreamLookupError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Service, e.Op, e.Err)
}

func (e *UpstreamLookupError) Unwrap() error {
	return e.Err
}
