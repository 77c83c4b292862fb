package service

import (
	"context"
	"strconv"
	"time"

	"fd-calculator/domain"
)

// ClassificationLookup resolves a customer's classification code. Unknown
// customers have none.
type ClassificationLookup interface {
	GetCustomerClassification(ctx context.Context, customerID int64) (string, error)
}

type CustomerClient struct {
	client lookupClient
}

func NewCustomerClient(baseURL string, timeout time.Duration) *CustomerClient {
	return &CustomerClient{client: newLookupClient("customer-service", baseURL, timeout)}
}

func (c *CustomerClient) GetCustomerClassification(ctx context.Context, customerID int64) (string, error) {
	customer, found, err := getData[domain.Customer](ctx, c.client, "get customer", "/"+strconv.FormatInt(customerID, 10), nil)
	if err != nil || !found {
		return "", err
	}
	return customer.CustomerClassification, nil
}
