package stores

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSyncRedisUnavailable = errors.New("sync redis unavailable")

// SyncCursor is the persisted progress of the sync engine.
type SyncCursor struct {
	LastRun time.Time
	Runs    uint64
}

type SyncStateStore struct {
	redis  redis.UniversalClient
	prefix string
}

func NewSyncStateStore(redisClient redis.UniversalClient, prefix string) *SyncStateStore {
	if prefix == "" {
		prefix = "gk"
	}
	return &SyncStateStore{
		redis:  redisClient,
		prefix: prefix,
	}
}

func (s *SyncStateStore) key() string {
	return s.prefix + ":sync:cursor"
}

// Advance marks a completed sync run at the given time and bumps the run
// counter.
func (s *SyncStateStore) Advance(ctx context.Context, ranAt time.Time) error {
	if s == nil || s.redis == nil {
		return ErrSyncRedisUnavailable
	}

	pipe := s.redis.TxPipeline()
	pipe.HSet(ctx, s.key(), "last_run", strconv.FormatInt(ranAt.UTC().UnixMilli(), 10))
	pipe.HIncrBy(ctx, s.key(), "runs", 1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrSyncRedisUnavailable, err)
	}

	return nil
}

// Cursor returns the persisted sync progress. A missing key yields a zero
// cursor, not an error.
func (s *SyncStateStore) Cursor(ctx context.Context) (SyncCursor, error) {
	if s == nil || s.redis == nil {
		return SyncCursor{}, ErrSyncRedisUnavailable
	}

	fields, err := s.redis.HGetAll(ctx, s.key()).Result()
	if err != nil {
		return SyncCursor{}, fmt.Errorf("%w: %v", ErrSyncRedisUnavailable, err)
	}
	if len(fields) == 0 {
		return SyncCursor{}, nil
	}

	var cursor SyncCursor
	if raw, ok := fields["last_run"]; ok {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			cursor.LastRun = time.UnixMilli(ms).UTC()
		}
	}
	if raw, ok := fields["runs"]; ok {
		runs, err := strconv.ParseUint(raw, 10, 64)
		if err == nil {
			cursor.Runs = runs
		}
	}

	return cursor, nil
}
