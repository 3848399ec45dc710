package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/cache"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/config"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultTTL = 10 * time.Minute

func setup(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})

	return cache.NewRedisCache(client, config.CacheConfig{DefaultTTL: defaultTTL}), mock
}

func catalog() []*models.Product {
	return []*models.Product{
		{ID: 1, Name: "Laptop Pro", Description: "High-performance laptop for professionals", Price: 1299.99},
		{ID: 2, Name: "Wireless Headphones", Description: "Premium noise-canceling headphones", Price: 199.99},
	}
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	payload, err := json.Marshal(catalog())
	require.NoError(t, err)

	t.Run("Success - Hit", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)
		mock.ExpectGet(cache.ProductListKey).SetVal(string(payload))

		var products []*models.Product

		// Act
		found, err := redisCache.Get(ctx, cache.ProductListKey, &products)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, catalog(), products)
	})

	t.Run("Success - Miss", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)
		mock.ExpectGet(cache.ProductListKey).SetErr(redis.Nil)

		var products []*models.Product

		// Act
		found, err := redisCache.Get(ctx, cache.ProductListKey, &products)

		// Assert
		require.NoError(t, err, "A miss is not an error")
		assert.False(t, found)
		assert.Nil(t, products)
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)
		redisErr := errors.New("redis connection error")
		mock.ExpectGet(cache.ProductListKey).SetErr(redisErr)

		var products []*models.Product

		// Act
		found, err := redisCache.Get(ctx, cache.ProductListKey, &products)

		// Assert
		assert.False(t, found)
		assert.ErrorIs(t, err, redisErr)
		assert.Contains(t, err.Error(), "failed to get key product:all from redis")
	})

	t.Run("Failure - Corrupt Entry", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)
		mock.ExpectGet(cache.ProductListKey).SetVal(`[{"id":"one"}]`)

		var products []*models.Product

		// Act
		found, err := redisCache.Get(ctx, cache.ProductListKey, &products)

		// Assert
		assert.False(t, found)

		var typeErr *json.UnmarshalTypeError
		assert.ErrorAs(t, err, &typeErr)
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	payload, err := json.Marshal(catalog())
	require.NoError(t, err)

	t.Run("Success - Explicit TTL", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)
		mock.ExpectSet(cache.ProductListKey, payload, time.Minute).SetVal("OK")

		// Act
		err := redisCache.Set(ctx, cache.ProductListKey, catalog(), time.Minute)

		// Assert
		require.NoError(t, err)
	})

	t.Run("Success - Default TTL", func(t *testing.T) {
		for _, ttl := range []time.Duration{0, -time.Second} {
			// Arrange
			redisCache, mock := setup(t)
			mock.ExpectSet(cache.ProductListKey, payload, defaultTTL).SetVal("OK")

			// Act
			err := redisCache.Set(ctx, cache.ProductListKey, catalog(), ttl)

			// Assert
			require.NoError(t, err, "ttl %s should fall back to the default", ttl)
		}
	})

	t.Run("Failure - Marshal Error", func(t *testing.T) {
		// Arrange
		redisCache, _ := setup(t)

		// Act
		err := redisCache.Set(ctx, "product:bad", make(chan int), time.Minute)

		// Assert
		var typeErr *json.UnsupportedTypeError
		assert.ErrorAs(t, err, &typeErr)
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)
		redisErr := errors.New("redis SET failed")
		mock.ExpectSet(cache.ProductListKey, payload, time.Minute).SetErr(redisErr)

		// Act
		err := redisCache.Set(ctx, cache.ProductListKey, catalog(), time.Minute)

		// Assert
		assert.ErrorIs(t, err, redisErr)
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Multiple Keys", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)
		mock.ExpectDel(cache.ProductListKey, cache.ProductKey(7)).SetVal(2)

		// Act
		err := redisCache.Delete(ctx, cache.ProductListKey, cache.ProductKey(7))

		// Assert
		require.NoError(t, err)
	})

	t.Run("No keys is a no-op", func(t *testing.T) {
		redisCache, _ := setup(t)

		require.NoError(t, redisCache.Delete(ctx))
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)
		redisErr := errors.New("redis DEL failed")
		mock.ExpectDel(cache.ProductListKey).SetErr(redisErr)

		// Act
		err := redisCache.Delete(ctx, cache.ProductListKey)

		// Assert
		assert.ErrorIs(t, err, redisErr)
		assert.Contains(t, err.Error(), "failed to delete keys product:all from redis")
	})
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "product:all", cache.ProductListKey)
	assert.Equal(t, "product:42", cache.ProductKey(42))
	assert.Equal(t, "prefix:", cache.Key("prefix", ""))
}
