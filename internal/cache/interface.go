package cache

import (
	"context"
	"strconv"
	"time"
)

// Cache stores JSON-encoded values. A miss is reported as found=false with a
// nil error.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const ProductKeyPrefix = "product"

// ProductListKey holds the full catalog listing in id order.
var ProductListKey = Key(ProductKeyPrefix, "all")

func ProductKey(id int64) string {
	return Key(ProductKeyPrefix, strconv.FormatInt(id, 10))
}
