package stats

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
)

const visitorKey = "retrofolio:visitors"

// Visitors counts site visits in Redis. The counter is strictly cosmetic:
// a nil client or a failing call degrades to zero instead of surfacing an
// error to the site.
type Visitors struct {
	client  *redis.Client
	started time.Time
}

func NewVisitors(client *redis.Client) *Visitors {
	return &Visitors{
		client:  client,
		started: time.Now(),
	}
}

// RecordVisit increments the counter and returns the new total.
func (v *Visitors) RecordVisit(ctx context.Context) int64 {
	if v.client == nil {
		return 0
	}

	total, err := v.client.Incr(ctx, visitorKey).Result()
	if err != nil {
		log.Warn("visitor counter increment failed", "error", err)
		return 0
	}
	return total
}

// Count returns the current total without incrementing.
func (v *Visitors) Count(ctx context.Context) int64 {
	if v.client == nil {
		return 0
	}

	total, err := v.client.Get(ctx, visitorKey).Int64()
	if err != nil && err != redis.Nil {
		log.Warn("visitor counter read failed", "error", err)
	}
	return total
}

// Uptime reports how long this instance has been serving.
func (v *Visitors) Uptime() time.Duration {
	return time.Since(v.started)
}
