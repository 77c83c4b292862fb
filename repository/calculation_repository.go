package repository

import (
	"context"

	"fd-calculator/domain"
)

// CalculationRepository keeps the history of successful calculations.
type CalculationRepository interface {
	Save(ctx context.Context, record domain.CalculationRecord) error
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.CalculationRecord, error)
}
