package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

const statsKey = "dashboard:stats"
const statsTTL = 30 * time.Second

// StatsCache stores the admin dashboard snapshot as a TTL'd JSON blob so
// repeated dashboard loads within the window skip the aggregation queries.
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached snapshot, a hit flag, and any transport error.
// A missing key is a miss, not an error.
func (c *StatsCache) Get(ctx context.Context) (*ports.DashboardStats, bool, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		// A corrupt entry is treated as a miss; the caller recomputes and overwrites it.
		return nil, false, nil
	}
	return &stats, true, nil
}

// Set stores the snapshot with the cache TTL.
func (c *StatsCache) Set(ctx context.Context, stats *ports.DashboardStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, statsKey, raw, statsTTL).Err(); err != nil {
		return fmt.Errorf("stats cache set: %w", err)
	}
	return nil
}
