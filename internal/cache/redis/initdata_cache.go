package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"webapp-auth-backend/internal/initdata"
	rplatform "webapp-auth-backend/internal/platform/redis"
)

// InitDataCache memoizes verified payloads keyed by a digest of the raw
// init data. Entries carry no session state; losing one only costs a
// re-validation.
type InitDataCache struct {
	client *rplatform.Client
	ttl    time.Duration
}

func NewInitDataCache(client *rplatform.Client, ttl time.Duration) *InitDataCache {
	return &InitDataCache{client: client, ttl: ttl}
}

func (c *InitDataCache) key(digest string) string {
	return fmt.Sprintf("initdata:verified:%s", digest)
}

// Get returns the cached payload for a digest, or (nil, nil) on miss.
func (c *InitDataCache) Get(ctx context.Context, digest string) (*initdata.InitData, error) {
	b, err := c.client.Get(ctx, c.key(digest)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var data initdata.InitData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Set stores a verified payload under its digest with the cache TTL.
func (c *InitDataCache) Set(ctx context.Context, digest string, data *initdata.InitData) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(digest), b, c.ttl).Err()
}
