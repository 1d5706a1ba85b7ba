package groomkit

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RedisStreamDelivery appends recorded events to a Redis stream via XADD.
// Stream entries carry the rendered field set; MaxLen, when positive, trims
// the stream approximately so unattended deployments do not grow unbounded.
// Write errors are discarded: the in-memory trail stays authoritative.
type RedisStreamDelivery struct {
	client redis.UniversalClient
	stream string
	maxLen int64
}

// NewRedisStreamDelivery creates a Redis stream sink. A zero or negative
// maxLen disables trimming.
func NewRedisStreamDelivery(client redis.UniversalClient, stream string, maxLen int64) *RedisStreamDelivery {
	if stream == "" {
		stream = "groomkit:events"
	}
	return &RedisStreamDelivery{
		client: client,
		stream: stream,
		maxLen: maxLen,
	}
}

func (d *RedisStreamDelivery) Deliver(ctx context.Context, record EventRecord) {
	if d == nil || d.client == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	values := map[string]interface{}{
		"id":        record.ID,
		"timestamp": record.Timestamp.UTC().Format(timestampLayout),
		"name":      record.Name,
		"metadata":  renderMetadata(record.Metadata),
		"role":      orDash(record.Role),
		"staff_id":  orDash(record.StaffID),
		"component": orDash(record.Component),
		"escalate":  strconv.FormatBool(record.Escalate),
	}

	args := &redis.XAddArgs{
		Stream: d.stream,
		Values: values,
	}
	if d.maxLen > 0 {
		args.MaxLen = d.maxLen
		args.Approx = true
	}

	_ = d.client.XAdd(ctx, args).Err()
}
