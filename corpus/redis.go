package corpus

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisBatch is the number of walks buffered before a pipeline round trip.
const DefaultRedisBatch = 1000

// RedisOption configures a RedisSink.
type RedisOption func(*RedisSink)

// WithRedisBatch sets the buffer size; values < 1 are ignored.
func WithRedisBatch(n int) RedisOption {
	return func(s *RedisSink) {
		if n > 0 {
			s.batch = n
		}
	}
}

// WithRedisTTL sets an expiry refreshed on every flush; 0 keeps the key forever.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(s *RedisSink) { s.ttl = ttl }
}

// RedisSink appends corpus lines to a Redis list with RPUSH.
// It is not safe for concurrent use.
type RedisSink struct {
	ctx    context.Context
	client redis.Cmdable
	key    string
	batch  int
	ttl    time.Duration

	pending []any
	walks   int
}

// NewRedisSink returns a sink pushing to the list at key. ctx bounds every
// round trip.
func NewRedisSink(ctx context.Context, client redis.Cmdable, key string, opts ...RedisOption) *RedisSink {
	if ctx == nil {
		ctx = context.Background()
	}
	s := &RedisSink{ctx: ctx, client: client, key: key, batch: DefaultRedisBatch}
	for _, opt := range opts {
		opt(s)
	}
	s.pending = make([]any, 0, s.batch)
	return s
}

// WriteWalk buffers one line, flushing when the batch is full.
func (s *RedisSink) WriteWalk(walk []string) error {
	s.pending = append(s.pending, Line(walk))
	if len(s.pending) >= s.batch {
		return s.Flush()
	}
	return nil
}

// Flush sends buffered lines in one pipeline.
func (s *RedisSink) Flush() error {
	if len(s.pending) == 0 {
		return nil
	}
	pipe := s.client.Pipeline()
	pipe.RPush(s.ctx, s.key, s.pending...)
	if s.ttl > 0 {
		pipe.Expire(s.ctx, s.key, s.ttl)
	}
	if _, err := pipe.Exec(s.ctx); err != nil {
		return err
	}
	s.walks += len(s.pending)
	clear(s.pending)
	s.pending = s.pending[:0]
	return nil
}

// Walks returns the number of walks stored in Redis so far.
func (s *RedisSink) Walks() int { return s.walks }
