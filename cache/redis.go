package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"backend/models"

	"github.com/redis/go-redis/v9"
)

// ProductTTL bounds how long a resolved barcode is served from cache.
// Open Food Facts entries change rarely; a day keeps lookups cheap without
// serving stale products forever.
const ProductTTL = 24 * time.Hour

type RedisClient struct {
	client *redis.Client
}

// NewRedisClient connects using REDIS_URL. Callers treat a nil client as
// "no cache" and fall through to live lookups.
func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// StoreProduct caches a resolved barcode lookup.
func (r *RedisClient) StoreProduct(ctx context.Context, barcode string, product *models.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}
	key := fmt.Sprintf("barcode:%s", barcode)
	if err := r.client.Set(ctx, key, data, ProductTTL).Err(); err != nil {
		return fmt.Errorf("failed to store product in Redis: %w", err)
	}
	return nil
}

// GetProduct returns the cached product for a barcode, with a found flag.
func (r *RedisClient) GetProduct(ctx context.Context, barcode string) (*models.Product, bool, error) {
	key := fmt.Sprintf("barcode:%s", barcode)
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get product from Redis: %w", err)
	}

	var product models.Product
	if err := json.Unmarshal([]byte(data), &product); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal product: %w", err)
	}
	return &product, true, nil
}
