// File: internal/cache/redis_test.go
package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	orig := redisNewClient
	t.Cleanup(func() { redisNewClient = orig })

	// ping 失敗
	redisNewClient = func(opt *redis.Options) redisClient {
		return &FakeCache{PingFn: func(ctx context.Context) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("ping"))
		}}
	}
	_, err := NewRedisClient("127.0.0.1:6379", "", 0)
	require.Error(t, err)

	// ping 成功
	var gotOpt *redis.Options
	redisNewClient = func(opt *redis.Options) redisClient {
		gotOpt = opt
		return &FakeCache{PingFn: func(ctx context.Context) *redis.StatusCmd {
			return redis.NewStatusResult("PONG", nil)
		}}
	}
	c, err := NewRedisClient("addr:6379", "pw", 2)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, "addr:6379", gotOpt.Addr)
	require.Equal(t, "pw", gotOpt.Password)
	require.Equal(t, 2, gotOpt.DB)
}
