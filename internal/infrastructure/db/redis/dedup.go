package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides idempotency checks for stock movements backed by
// Redis. Key format: stock:<item_id>:<reference>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact movement has already been processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, itemID, reference string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(itemID, reference, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this movement has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, itemID, reference string, ts time.Time) error {
	return d.client.Set(ctx, d.key(itemID, reference, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(itemID, reference string, ts time.Time) string {
	return fmt.Sprintf("stock:%s:%s:%d", itemID, reference, ts.Unix())
}
