package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID                        int64               `json:"id"`
	ProductName               string              `json:"productName"`
	ProductCode               string              `json:"productCode"`
	ProductType               string              `json:"productType"`
	Description               string              `json:"description"`
	MinAmount                 decimal.NullDecimal `json:"minAmount"`
	MaxAmount                 decimal.NullDecimal `json:"maxAmount"`
	MinTermMonths             *int                `json:"minTermMonths"`
	MaxTermMonths             *int                `json:"maxTermMonths"`
	BaseInterestRate          decimal.Decimal     `json:"baseInterestRate"`
	InterestCalculationMethod string              `json:"interestCalculationMethod"`
	InterestPayoutFrequency   string              `json:"interestPayoutFrequency"`
	TDSApplicable             bool                `json:"tdsApplicable"`
	TDSRate                   decimal.NullDecimal `json:"tdsRate"`
	Active                    bool                `json:"active"`
	Status                    string              `json:"status"`
}

func (p Product) Constraints() *ProductConstraints {
	return &ProductConstraints{
		ProductCode:     p.ProductCode,
		MinPrincipal:    p.MinAmount,
		MaxPrincipal:    p.MaxAmount,
		MinTenureMonths: p.MinTermMonths,
		MaxTenureMonths: p.MaxTermMonths,
	}
}

// InterestRate is a row of the product's rate matrix that applies to a
// given amount, term and customer classification.
type InterestRate struct {
	ID                     int64               `json:"id"`
	MinAmount              decimal.NullDecimal `json:"minAmount"`
	MaxAmount              decimal.NullDecimal `json:"maxAmount"`
	MinTermMonths          *int                `json:"minTermMonths"`
	MaxTermMonths          *int                `json:"maxTermMonths"`
	CustomerClassification string              `json:"customerClassification"`
	InterestRate           decimal.Decimal     `json:"interestRate"`
	AdditionalRate         decimal.NullDecimal `json:"additionalRate"`
	TotalRate              decimal.NullDecimal `json:"totalRate"`
}

// Rate prefers the total rate (base + bonus) when the pricing service sent one.
func (r InterestRate) Rate() decimal.Decimal {
	if r.TotalRate.Valid {
		return r.TotalRate.Decimal
	}
	return r.InterestRate
}

type Customer struct {
	ID                     int64  `json:"id"`
	FullName               string `json:"fullName"`
	CustomerClassification string `json:"customerClassification"`
}

// APIResponse is the envelope every service in the platform answers with.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
}
