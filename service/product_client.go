package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"fd-calculator/domain"
)

// ProductLookup resolves product configuration and the applicable rate from
// the product-pricing service.
type ProductLookup interface {
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
	// GetApplicableRate returns nil when no rate row matches.
	GetApplicableRate(ctx context.Context, productID int64, amount decimal.Decimal, termMonths int, classification string) (*domain.InterestRate, error)
}

type ProductClient struct {
	client lookupClient
}

func NewProductClient(baseURL string, timeout time.Duration) *ProductClient {
	return &ProductClient{client: newLookupClient("product-pricing-service", baseURL, timeout)}
}

func (p *ProductClient) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	product, found, err := getData[domain.Product](ctx, p.client, "get product", "/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return domain.Product{}, err
	}
	if !found {
		return domain.Product{}, fmt.Errorf("product %d: %w", id, domain.ErrProductNotFound)
	}
	return product, nil
}

func (p *ProductClient) GetApplicableRate(ctx context.Context, productID int64, amount decimal.Decimal, termMonths int, classification string) (*domain.InterestRate, error) {
	query := url.Values{}
	query.Set("amount", amount.String())
	query.Set("termMonths", strconv.Itoa(termMonths))
	if classification != "" {
		query.Set("classification", classification)
	}

	path := "/" + strconv.FormatInt(productID, 10) + "/interest-rates/applicable"
	rate, found, err := getData[domain.InterestRate](ctx, p.client, "get applicable rate", path, query)
	if err != nil || !found {
		return nil, err
	}
	return &rate, nil
}
