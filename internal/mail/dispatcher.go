// File: internal/mail/dispatcher.go
package mail

import (
	"context"
	"encoding/json"

	"skincare-api/internal/cache"
)

// QueueKey OTP 郵件佇列的 Redis key
const QueueKey = "mail:otp"

// jsonMarshal 測試可覆寫
var jsonMarshal = json.Marshal

// Dispatcher 將郵件指令交付佇列，呼叫端不等待寄送結果
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd Command) error
}

// RedisDispatcher 以 Redis list 作為郵件佇列的 broker
type RedisDispatcher struct {
	cache cache.Cache
}

func NewRedisDispatcher(c cache.Cache) *RedisDispatcher {
	return &RedisDispatcher{cache: c}
}

// Dispatch 序列化指令並推入佇列
func (d *RedisDispatcher) Dispatch(ctx context.Context, cmd Command) error {
	payload, err := jsonMarshal(cmd)
	if err != nil {
		return err
	}
	return d.cache.LPush(ctx, QueueKey, payload).Err()
}

// FakeDispatcher 測試用
type FakeDispatcher struct {
	DispatchFn func(ctx context.Context, cmd Command) error
}

func (f *FakeDispatcher) Dispatch(ctx context.Context, cmd Command) error {
	if f.DispatchFn != nil {
		return f.DispatchFn(ctx, cmd)
	}
	panic("unexpected Dispatch")
}
