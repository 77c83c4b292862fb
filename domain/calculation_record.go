package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RecordStandalone = "standalone"
	RecordProduct    = "product"
	RecordCompare    = "compare"
)

// CalculationRecord is the history row kept for every successful calculation.
type CalculationRecord struct {
	ID             string          `json:"id"`
	Kind           string          `json:"kind"`
	Subject        string          `json:"subject,omitempty"`
	ProductID      int64           `json:"productId,omitempty"`
	Principal      decimal.Decimal `json:"principalAmount"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	TenureInMonths int             `json:"tenureInMonths"`
	InterestEarned decimal.Decimal `json:"interestEarned"`
	MaturityAmount decimal.Decimal `json:"maturityAmount"`
	CreatedAt      time.Time       `json:"createdAt"`
}
