package repository

import "context"

// CacheRepository stores lookup results from the product and customer
// services. Values are opaque strings; a miss is reported as false.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
