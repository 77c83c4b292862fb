package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TenureUnit string

const (
	TenureDays   TenureUnit = "DAYS"
	TenureMonths TenureUnit = "MONTHS"
	TenureYears  TenureUnit = "YEARS"
)

type CalculationType string

const (
	CalculationSimple   CalculationType = "SIMPLE"
	CalculationCompound CalculationType = "COMPOUND"
)

type CompoundingFrequency string

const (
	FrequencyDaily        CompoundingFrequency = "DAILY"
	FrequencyMonthly      CompoundingFrequency = "MONTHLY"
	FrequencyQuarterly    CompoundingFrequency = "QUARTERLY"
	FrequencySemiAnnually CompoundingFrequency = "SEMI_ANNUALLY"
	FrequencyAnnually     CompoundingFrequency = "ANNUALLY"
)

// ProductConstraints are the bounds a product places on a deposit.
// An invalid / nil bound means there is no limit on that side.
type ProductConstraints struct {
	ProductCode     string
	MinPrincipal    decimal.NullDecimal
	MaxPrincipal    decimal.NullDecimal
	MinTenureMonths *int
	MaxTenureMonths *int
}

type CalculationRequest struct {
	Principal               decimal.Decimal      `json:"principalAmount"`
	InterestRate            decimal.Decimal      `json:"interestRate"`
	Tenure                  int                  `json:"tenure"`
	TenureUnit              TenureUnit           `json:"tenureUnit"`
	CalculationType         CalculationType      `json:"calculationType"`
	CompoundingFrequency    CompoundingFrequency `json:"compoundingFrequency,omitempty"`
	TDSRate                 decimal.NullDecimal  `json:"tdsRate"`
	CustomerClassifications []string             `json:"customerClassifications,omitempty"`
	CustomInterestRate      decimal.NullDecimal  `json:"customInterestRate"`

	// Set by the orchestration layer, never decoded from a client.
	ProductRate decimal.NullDecimal `json:"-"`
	Constraints *ProductConstraints `json:"-"`
	StartDate   time.Time           `json:"-"`
}

type MonthlyBreakdown struct {
	Month              int             `json:"month"`
	Date               time.Time       `json:"date"`
	OpeningBalance     decimal.Decimal `json:"openingBalance"`
	InterestEarned     decimal.Decimal `json:"interestEarned"`
	ClosingBalance     decimal.Decimal `json:"closingBalance"`
	CumulativeInterest decimal.Decimal `json:"cumulativeInterest"`
}

type CalculationResult struct {
	PrincipalAmount         decimal.Decimal      `json:"principalAmount"`
	BaseInterestRate        decimal.Decimal      `json:"baseInterestRate"`
	AdditionalInterestRate  decimal.Decimal      `json:"additionalInterestRate"`
	InterestRate            decimal.Decimal      `json:"interestRate"`
	RateCapped              bool                 `json:"rateCapped,omitempty"`
	Tenure                  int                  `json:"tenure"`
	TenureUnit              TenureUnit           `json:"tenureUnit"`
	TenureInMonths          int                  `json:"tenureInMonths"`
	TenureInYears           decimal.Decimal      `json:"tenureInYears"`
	CalculationType         CalculationType      `json:"calculationType"`
	CompoundingFrequency    CompoundingFrequency `json:"compoundingFrequency,omitempty"`
	InterestEarned          decimal.Decimal      `json:"interestEarned"`
	TDSRate                 decimal.Decimal      `json:"tdsRate"`
	TDSAmount               decimal.Decimal      `json:"tdsAmount"`
	NetInterest             decimal.Decimal      `json:"netInterest"`
	MaturityAmount          decimal.Decimal      `json:"maturityAmount"`
	StartDate               time.Time            `json:"startDate"`
	MaturityDate            time.Time            `json:"maturityDate"`
	CustomerClassifications []string             `json:"customerClassifications,omitempty"`
	ProductID               int64                `json:"productId,omitempty"`
	ProductCode             string               `json:"productCode,omitempty"`
	ProductName             string               `json:"productName,omitempty"`
	MonthlyBreakdown        []MonthlyBreakdown   `json:"monthlyBreakdown,omitempty"`
}

type ComparisonRequest struct {
	Scenarios       []CalculationRequest `json:"scenarios"`
	CommonPrincipal decimal.NullDecimal  `json:"commonPrincipal"`
}

type ComparisonResult struct {
	Scenarios         []CalculationResult `json:"scenarios"`
	BestScenario      CalculationResult   `json:"bestScenario"`
	BestScenarioIndex int                 `json:"bestScenarioIndex"`
}

// ProductCalculationRequest asks for a calculation driven by a product's
// configuration. Empty type / frequency fall back to the product's settings.
type ProductCalculationRequest struct {
	ProductID               int64                `json:"productId"`
	Principal               decimal.Decimal      `json:"principalAmount"`
	Tenure                  int                  `json:"tenure"`
	TenureUnit              TenureUnit           `json:"tenureUnit"`
	CalculationType         CalculationType      `json:"calculationType,omitempty"`
	CompoundingFrequency    CompoundingFrequency `json:"compoundingFrequency,omitempty"`
	CustomerID              *int64               `json:"customerId,omitempty"`
	CustomerClassifications []string             `json:"customerClassifications,omitempty"`
	CustomInterestRate      decimal.NullDecimal  `json:"customInterestRate"`
	ApplyTDS                *bool                `json:"applyTds,omitempty"`
}
