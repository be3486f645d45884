package services

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const presencePrefix = "presence:"

// Presence tracks which devices have polled recently, keyed by MAC with
// a TTL. It is a best-effort observability aid layered on top of the
// dispatch protocol; with no redis configured it degrades to a no-op.
type Presence struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewPresence(rdb *redis.Client, ttl time.Duration, logger zerolog.Logger) *Presence {
	return &Presence{rdb: rdb, ttl: ttl, logger: logger}
}

func (p *Presence) Enabled() bool { return p != nil && p.rdb != nil }

// Touch refreshes the device's last-seen mark. Best effort: a slow or
// down redis must not stall the poll that triggered it.
func (p *Presence) Touch(ctx context.Context, mac string) {
	if !p.Enabled() {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	if err := p.rdb.Set(ctx, presencePrefix+mac, time.Now().Unix(), p.ttl).Err(); err != nil {
		p.logger.Warn().Err(err).Str("mac", mac).Msg("presence touch failed")
	}
}

// Online lists the MAC addresses seen within the TTL window.
func (p *Presence) Online(ctx context.Context) ([]string, error) {
	if !p.Enabled() {
		return nil, nil
	}
	var (
		macs   []string
		cursor uint64
	)
	for {
		keys, next, err := p.rdb.Scan(ctx, cursor, presencePrefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			macs = append(macs, strings.TrimPrefix(k, presencePrefix))
		}
		cursor = next
		if cursor == 0 {
			return macs, nil
		}
	}
}
