// Package cache memoizes expensive per-team round aggregates. Stored facts
// stay the source of truth: entries live for a short TTL and are dropped
// explicitly whenever a hole score for that team and round is written
// (cache-aside, not write-through).
package cache

import (
	"context"
	"fmt"
	"time"
)

// DefaultTTL bounds how stale a memoized aggregate can get if an
// invalidation is missed.
const DefaultTTL = 30 * time.Second

// AggregateCache stores JSON-serializable values under string keys.
// Get reports whether the key was present and unexpired.
type AggregateCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context, key string) error
}

// AggregateKey is the memoization key for a team's round aggregate.
func AggregateKey(teamID, round int) string {
	return fmt.Sprintf("agg:%d:r%d", teamID, round)
}
