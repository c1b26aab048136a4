package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stocklane/inventory-system/internal/core/ports"
)

const (
	overviewKey = "dashboard:overview"
	overviewTTL = 30 * time.Second
)

// OverviewCache caches the dashboard overview payload for a short window so
// repeated landing-page loads do not re-run the aggregation.
type OverviewCache struct {
	client *redis.Client
}

// NewOverviewCache creates an OverviewCache wrapping the given Redis client.
func NewOverviewCache(client *redis.Client) *OverviewCache {
	return &OverviewCache{client: client}
}

// Get returns the cached overview, or (nil, nil) on a cache miss.
func (c *OverviewCache) Get(ctx context.Context) (*ports.Overview, error) {
	raw, err := c.client.Get(ctx, overviewKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("overview cache get: %w", err)
	}

	var o ports.Overview
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("overview cache decode: %w", err)
	}
	return &o, nil
}

// Set stores the overview with a short TTL.
func (c *OverviewCache) Set(ctx context.Context, o *ports.Overview) error {
	raw, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("overview cache encode: %w", err)
	}
	return c.client.Set(ctx, overviewKey, raw, overviewTTL).Err()
}
