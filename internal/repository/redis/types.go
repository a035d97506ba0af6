//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type (
	// Metrics records journal operation outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Client is the subset of the Redis client used by FailureJournal.
	Client interface {
		ZAdd(ctx context.Context, key string, members ...goredis.Z) *goredis.IntCmd
		ZRange(ctx context.Context, key string, start, stop int64) *goredis.StringSliceCmd
		Expire(ctx context.Context, key string, expiration time.Duration) *goredis.BoolCmd
		Close() error
	}
)
