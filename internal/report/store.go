// Package report persists and renders benchmark run summaries.  The
// Redis-backed store keeps a capped history so campaigns executed at
// different times can be compared; the table writer renders the
// report printed after a campaign.
package report

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/reservation-bench/internal/bench"
)

// summariesKey is the Redis list holding summaries, newest first.
const summariesKey = "bench:summaries"

// MaxStored caps the history length; no read can return more entries.
const MaxStored = 200

// Store persists run summaries in Redis.  A Store built from a nil
// client is disabled: Save becomes a no-op and Recent returns nothing,
// so the benchmark degrades gracefully when Redis is unreachable.
type Store struct {
	client *redis.Client
}

// NewStore wraps the given client; nil is allowed and disables the store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Enabled reports whether summaries are actually persisted.
func (s *Store) Enabled() bool { return s.client != nil }

// Save appends one summary to the history and trims it to maxStored.
func (s *Store) Save(ctx context.Context, sum bench.Summary) error {
	if s.client == nil {
		return nil
	}
	body, err := json.Marshal(sum)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, summariesKey, body)
	pipe.LTrim(ctx, summariesKey, 0, MaxStored-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store summary: %w", err)
	}
	return nil
}

// Recent returns up to n summaries, newest first.  Entries that fail
// to decode are skipped rather than failing the whole read.
func (s *Store) Recent(ctx context.Context, n int) ([]bench.Summary, error) {
	if s.client == nil {
		return nil, nil
	}
	if n <= 0 || n > MaxStored {
		n = MaxStored
	}
	raw, err := s.client.LRange(ctx, summariesKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read summaries: %w", err)
	}
	out := make([]bench.Summary, 0, len(raw))
	for _, item := range raw {
		var sum bench.Summary
		if err := json.Unmarshal([]byte(item), &sum); err != nil {
			continue
		}
		out = append(out, sum)
	}
	return out, nil
}
