// File: internal/cache/cache_test.go
package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	c := &FakeCache{}
	require.Panics(t, func() { c.Get(context.Background(), "k") })
	require.Panics(t, func() { c.Set(context.Background(), "k", 1, 0) })
	require.Panics(t, func() { c.LPush(context.Background(), "k", "v") })
	require.Panics(t, func() { c.BRPop(context.Background(), time.Second, "k") })
	require.Panics(t, func() { c.Ping(context.Background()) })
	require.NoError(t, c.Close())

	gCalled := false
	lCalled := false
	bCalled := false
	clCalled := false
	c.GetFn = func(ctx context.Context, key string) *redis.StringCmd {
		gCalled = true
		return redis.NewStringResult("v", nil)
	}
	c.SetFn = func(ctx context.Context, key string, val any, exp time.Duration) *redis.StatusCmd {
		return redis.NewStatusResult("OK", nil)
	}
	c.LPushFn = func(ctx context.Context, key string, values ...any) *redis.IntCmd {
		lCalled = true
		return redis.NewIntResult(1, nil)
	}
	c.BRPopFn = func(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd {
		bCalled = true
		return redis.NewStringSliceResult([]string{"k", "v"}, nil)
	}
	c.PingFn = func(ctx context.Context) *redis.StatusCmd {
		return redis.NewStatusResult("PONG", nil)
	}
	c.CloseFn = func() error { clCalled = true; return errors.New("close") }

	require.Equal(t, "v", c.Get(context.Background(), "k").Val())
	require.Equal(t, "OK", c.Set(context.Background(), "k", 1, 0).Val())
	require.Equal(t, int64(1), c.LPush(context.Background(), "k", "v").Val())
	require.Equal(t, []string{"k", "v"}, c.BRPop(context.Background(), time.Second, "k").Val())
	require.Equal(t, "PONG", c.Ping(context.Background()).Val())
	require.EqualError(t, c.Close(), "close")
	require.True(t, gCalled)
	require.True(t, lCalled)
	require.True(t, bCalled)
	require.True(t, clCalled)
}
