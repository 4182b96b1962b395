package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// RakutenClient defines the interface for the Rakuten Ichiba item search API
type RakutenClient interface {
	SearchItems(ctx context.Context, keyword string, page int) (*RakutenSearchResponse, error)
}
