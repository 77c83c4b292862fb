package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fd-calculator/calculator"
	"fd-calculator/domain"
	"fd-calculator/logger"
	"fd-calculator/repository"
	"fd-calculator/security"
)

type FdCalculatorService struct {
	repo      repository.CalculationRepository
	cache     repository.CacheRepository
	products  ProductLookup
	customers ClassificationLookup
	now       func() time.Time
}

// NewFdCalculatorService creates a new FdCalculatorService. Lookups are
// cached in cache; successful calculations are recorded in repo.
func NewFdCalculatorService(repo repository.CalculationRepository,
	cache repository.CacheRepository,
	products ProductLookup,
	customers ClassificationLookup,
) *FdCalculatorService {
	return &FdCalculatorService{
		repo:      repo,
		cache:     cache,
		products:  products,
		customers: customers,
		now:       time.Now,
	}
}

// today is the calculation start date: the current UTC calendar day.
func (s *FdCalculatorService) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CalculateStandalone runs the engine on caller-supplied parameters.
func (s *FdCalculatorService) CalculateStandalone(
	ctx context.Context,
	req domain.CalculationRequest,
) (domain.CalculationResult, error) {
	req.ProductRate = decimal.NullDecimal{}
	req.Constraints = nil
	req.StartDate = s.today()

	result, err := calculator.Calculate(req)
	if err != nil {
		return domain.CalculationResult{}, err
	}
	warnIfCapped(result)

	s.record(ctx, domain.RecordStandalone, result)
	return result, nil
}

// CalculateWithProduct runs the engine with rate, bounds, calculation method
// and TDS taken from the product's configuration.
func (s *FdCalculatorService) CalculateWithProduct(
	ctx context.Context,
	req domain.ProductCalculationRequest,
) (domain.CalculationResult, error) {
	if req.ProductID <= 0 {
		return domain.CalculationResult{}, domain.NewValidationError("productId", "is required")
	}

	product, err := s.product(ctx, req.ProductID)
	if err != nil {
		return domain.CalculationResult{}, fmt.Errorf("fetch product %d: %w", req.ProductID, err)
	}

	calcReq := domain.CalculationRequest{
		Principal:            req.Principal,
		InterestRate:         product.BaseInterestRate,
		Tenure:               req.Tenure,
		TenureUnit:           req.TenureUnit,
		CalculationType:      req.CalculationType,
		CompoundingFrequency: req.CompoundingFrequency,
		CustomInterestRate:   req.CustomInterestRate,
		Constraints:          product.Constraints(),
		StartDate:            s.today(),
	}
	if calcReq.CalculationType == "" {
		calcReq.CalculationType = calculator.ParseCalculationType(product.InterestCalculationMethod)
	}
	if calcReq.CalculationType == domain.CalculationCompound && calcReq.CompoundingFrequency == "" {
		calcReq.CompoundingFrequency = calculator.ParseCompoundingFrequency(product.InterestPayoutFrequency)
	}

	applyTDS := product.TDSApplicable
	if req.ApplyTDS != nil {
		applyTDS = *req.ApplyTDS
	}
	if applyTDS && product.TDSRate.Valid {
		calcReq.TDSRate = product.TDSRate
	}

	// Rechazar solicitudes inválidas antes de consultar otros servicios
	if err := calculator.Validate(calcReq); err != nil {
		return domain.CalculationResult{}, err
	}
	tenureInMonths := calculator.TenureInMonths(req.Tenure, req.TenureUnit)
	if err := calculator.CheckConstraints(req.Principal, tenureInMonths, calcReq.Constraints); err != nil {
		return domain.CalculationResult{}, err
	}

	calcReq.CustomerClassifications = s.resolveClassifications(ctx, req)

	primary := ""
	if len(calcReq.CustomerClassifications) > 0 {
		primary = calcReq.CustomerClassifications[0]
	}
	rate, err := s.products.GetApplicableRate(ctx, product.ID, req.Principal, tenureInMonths, primary)
	if err != nil {
		logger.L.Warn("Applicable rate lookup failed, using product base rate",
			"productID", product.ID, "baseRate", product.BaseInterestRate, "error", err)
	} else if rate != nil {
		calcReq.ProductRate = decimal.NewNullDecimal(rate.Rate())
	}

	result, err := calculator.Calculate(calcReq)
	if err != nil {
		return domain.CalculationResult{}, err
	}
	result.ProductID = product.ID
	result.ProductCode = product.ProductCode
	result.ProductName = product.ProductName
	warnIfCapped(result)

	s.record(ctx, domain.RecordProduct, result)
	return result, nil
}

// CompareScenarios calculates every scenario with today's start date and
// picks the one with the highest maturity amount.
func (s *FdCalculatorService) CompareScenarios(
	ctx context.Context,
	req domain.ComparisonRequest,
) (domain.ComparisonResult, error) {
	start := s.today()
	scenarios := make([]domain.CalculationRequest, len(req.Scenarios))
	for i, scenario := range req.Scenarios {
		scenario.ProductRate = decimal.NullDecimal{}
		scenario.Constraints = nil
		scenario.StartDate = start
		scenarios[i] = scenario
	}
	req.Scenarios = scenarios

	result, err := calculator.Compare(req)
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	s.record(ctx, domain.RecordCompare, result.BestScenario)
	return result, nil
}

func (s *FdCalculatorService) InvalidateProduct(ctx context.Context, productID int64) error {
	return s.cache.Delete(ctx, fmt.Sprintf(productCacheKey, productID))
}

func (s *FdCalculatorService) InvalidateCustomer(ctx context.Context, customerID int64) error {
	return s.cache.Delete(ctx, fmt.Sprintf(classificationCacheKey, customerID))
}

// RecentCalculations returns the newest history records. limit is clamped to
// 1..MaxRecentLimit; 0 means DefaultRecentLimit.
func (s *FdCalculatorService) RecentCalculations(ctx context.Context, limit int) ([]domain.CalculationRecord, error) {
	switch {
	case limit <= 0:
		limit = DefaultRecentLimit
	case limit > MaxRecentLimit:
		limit = MaxRecentLimit
	}
	return s.repo.Recent(ctx, limit)
}

// resolveClassifications puts the customer's own classification first, then
// the codes sent with the request. A failed customer lookup is not fatal.
func (s *FdCalculatorService) resolveClassifications(ctx context.Context, req domain.ProductCalculationRequest) []string {
	var codes []string
	if req.CustomerID != nil {
		classification, err := s.classification(ctx, *req.CustomerID)
		if err != nil {
			logger.L.Warn("Customer classification lookup failed, continuing without it",
				"customerID", *req.CustomerID, "error", err)
		} else if classification != "" {
			codes = append(codes, classification)
		}
	}
	codes = append(codes, req.CustomerClassifications...)
	return calculator.NormalizeClassifications(codes)
}

func (s *FdCalculatorService) product(ctx context.Context, id int64) (domain.Product, error) {
	return readThrough(ctx, s.cache, fmt.Sprintf(productCacheKey, id), func(ctx context.Context) (domain.Product, bool, error) {
		p, err := s.products.GetProduct(ctx, id)
		return p, err == nil, err
	})
}

func (s *FdCalculatorService) classification(ctx context.Context, customerID int64) (string, error) {
	return readThrough(ctx, s.cache, fmt.Sprintf(classificationCacheKey, customerID), func(ctx context.Context) (string, bool, error) {
		c, err := s.customers.GetCustomerClassification(ctx, customerID)
		return c, err == nil && c != "", err
	})
}

// readThrough serves key from cache or calls fetch and stores its result as
// JSON when fetch reports it worth keeping. Cache failures only cost a lookup.
func readThrough[T any](
	ctx context.Context,
	cache repository.CacheRepository,
	key string,
	fetch func(ctx context.Context) (T, bool, error),
) (T, error) {
	if raw, ok := cache.Get(ctx, key); ok {
		var cached T
		err := json.Unmarshal([]byte(raw), &cached)
		if err == nil {
			return cached, nil
		}
		logger.L.Warn("Discarding undecodable cache entry", "key", key, "error", err)
	}

	value, keep, err := fetch(ctx)
	if err != nil || !keep {
		return value, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		logger.L.Warn("Failed to encode cache entry", "key", key, "error", err)
		return value, nil
	}
	if err := cache.Set(ctx, key, string(encoded)); err != nil {
		logger.L.Warn("Failed to write cache entry", "key", key, "error", err)
	}
	return value, nil
}

// record guarda el resultado (no crítico si falla)
func (s *FdCalculatorService) record(ctx context.Context, kind string, result domain.CalculationResult) {
	rec := domain.CalculationRecord{
		ID:             uuid.NewString(),
		Kind:           kind,
		Subject:        security.SubjectFromContext(ctx),
		ProductID:      result.ProductID,
		Principal:      result.PrincipalAmount,
		InterestRate:   result.InterestRate,
		TenureInMonths: result.TenureInMonths,
		InterestEarned: result.InterestEarned,
		MaturityAmount: result.MaturityAmount,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		logger.L.Warn("Failed to save calculation", "kind", kind, "id", rec.ID, "error", err)
	}
}

func warnIfCapped(result domain.CalculationResult) {
	if result.RateCapped {
		logger.L.Warn("Custom interest rate capped",
			"baseRate", result.BaseInterestRate, "appliedRate", result.InterestRate, "productID", result.ProductID)
	}
}
