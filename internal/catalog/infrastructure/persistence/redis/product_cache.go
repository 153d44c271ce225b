package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wyfcoding/beautyassistant/internal/catalog/domain"
)

type productCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewProductCache(client redis.UniversalClient, ttl time.Duration) domain.ProductCache {
	return &productCache{
		client: client,
		prefix: "catalog:product:",
		ttl:    ttl,
	}
}

func (c *productCache) Get(ctx context.Context, productID string) (*domain.Product, error) {
	data, err := c.client.Get(ctx, c.key(productID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var product domain.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *productCache) Set(ctx context.Context, product *domain.Product) error {
	if product == nil {
		return nil
	}
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(product.ProductID), data, c.ttl).Err()
}

func (c *productCache) Invalidate(ctx context.Context, productIDs ...string) error {
	if len(productIDs) == 0 {
		return nil
	}
	keys := make([]string, len(productIDs))
	for i, id := range productIDs {
		keys[i] = c.key(id)
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *productCache) key(id string) string {
	return c.prefix + id
}
