// File: internal/mail/dispatcher_test.go
package mail

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"skincare-api/internal/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisDispatcher(t *testing.T) {
	t.Cleanup(func() { jsonMarshal = json.Marshal })

	// 序列化失敗
	jsonMarshal = func(any) ([]byte, error) { return nil, errors.New("json") }
	d := NewRedisDispatcher(&cache.FakeCache{})
	require.Error(t, d.Dispatch(context.Background(), Command{}))

	// LPush 失敗
	jsonMarshal = json.Marshal
	c := &cache.FakeCache{
		LPushFn: func(ctx context.Context, key string, values ...any) *redis.IntCmd {
			return redis.NewIntResult(0, errors.New("push"))
		},
	}
	d = NewRedisDispatcher(c)
	require.Error(t, d.Dispatch(context.Background(), Command{}))

	// 成功：指令以 JSON 進入佇列
	var gotKey string
	var gotPayload []byte
	c = &cache.FakeCache{
		LPushFn: func(ctx context.Context, key string, values ...any) *redis.IntCmd {
			gotKey = key
			gotPayload = values[0].([]byte)
			return redis.NewIntResult(1, nil)
		},
	}
	d = NewRedisDispatcher(c)
	cmd := Command{UserID: 7, Email: "a@b.c", Code: "4821"}
	require.NoError(t, d.Dispatch(context.Background(), cmd))
	require.Equal(t, QueueKey, gotKey)

	var decoded Command
	require.NoError(t, json.Unmarshal(gotPayload, &decoded))
	require.Equal(t, cmd, decoded)
}

func TestFakeDispatcher(t *testing.T) {
	f := &FakeDispatcher{}
	require.Panics(t, func() { _ = f.Dispatch(context.Background(), Command{}) })

	called := false
	f.DispatchFn = func(ctx context.Context, cmd Command) error { called = true; return nil }
	require.NoError(t, f.Dispatch(context.Background(), Command{}))
	require.True(t, called)
}
