package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const pageTTL = 30 * time.Minute

// PageCache keeps fetched listing HTML in Redis so repeated runs within the
// TTL don't hit the retailers again.
type PageCache struct {
	Client *redis.Client
}

func (c *PageCache) Get(url string) (string, bool) {
	ctx := context.Background()

	val, err := c.Client.Get(ctx, key(url)).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *PageCache) Set(url, html string) error {
	ctx := context.Background()

	return c.Client.Set(ctx, key(url), html, pageTTL).Err()
}

func key(url string) string {
	return "page:" + url
}
