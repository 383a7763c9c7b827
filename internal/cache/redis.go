package cache

import (
	"context"
	"encoding/json"
	"time"

	"manomangal/config"
	"manomangal/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client  *redis.Client
	menuTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, menuTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:  redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		menuTTL: menuTTL,
	}
}

func (c *RedisCache) GetMenu(ctx context.Context) ([]domain.MenuItem, error) {
	data, err := c.client.Get(ctx, menuKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *RedisCache) SetMenu(ctx context.Context, items []domain.MenuItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, menuKey(), payload, c.menuTTL).Err()
}

func menuKey() string {
	return "cache:menu_items"
}
