package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"producttrial/internal/domain/model"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/gommon/log"
)

const productKeyPrefix = "product:"

// NewRedisClient は接続してPingまで確認する
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	if addr == "" {
		return nil, errors.New("redis addr is empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return client, nil
}

// 商品の読み取りキャッシュ（product:<id> にJSON）
// 失敗はログだけ出してDBにフォールバックさせる
type RedisProductCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

// DI
func NewRedisProductCache(client *redis.Client, ttl time.Duration, logger *log.Logger) *RedisProductCache {
	return &RedisProductCache{client: client, ttl: ttl, logger: logger}
}

func productKey(id int64) string {
	return productKeyPrefix + strconv.FormatInt(id, 10)
}

func (c *RedisProductCache) Get(ctx context.Context, id int64) (model.Product, bool) {
	raw, err := c.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warnf("product cache get %d: %v", id, err)
		}
		return model.Product{}, false
	}

	var p model.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		c.logger.Warnf("product cache decode %d: %v", id, err)
		return model.Product{}, false
	}
	return p, true
}

func (c *RedisProductCache) Set(ctx context.Context, p model.Product) {
	raw, err := json.Marshal(p)
	if err != nil {
		c.logger.Warnf("product cache encode %d: %v", p.ID, err)
		return
	}
	if err := c.client.Set(ctx, productKey(p.ID), raw, c.ttl).Err(); err != nil {
		c.logger.Warnf("product cache set %d: %v", p.ID, err)
	}
}

func (c *RedisProductCache) Invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, productKey(id)).Err(); err != nil {
		c.logger.Warnf("product cache del %d: %v", id, err)
	}
}

// REDIS_ADDR 未設定時
type NoopProductCache struct{}

func (NoopProductCache) Get(context.Context, int64) (model.Product, bool) { return model.Product{}, false }
func (NoopProductCache) Set(context.Context, model.Product)               {}
func (NoopProductCache) Invalidate(context.Context, int64)                {}
