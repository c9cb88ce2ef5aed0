// File: internal/mail/worker_test.go
package mail

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"skincare-api/internal/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestWorkerRun(t *testing.T) {
	payload, _ := json.Marshal(Command{UserID: 7, Email: "a@b.c", Code: "4821"})

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	c := &cache.FakeCache{
		BRPopFn: func(_ context.Context, _ time.Duration, keys ...string) *redis.StringSliceCmd {
			require.Equal(t, []string{QueueKey}, keys)
			calls++
			switch calls {
			case 1:
				// 佇列為空
				return redis.NewStringSliceResult(nil, redis.Nil)
			case 2:
				// 壞掉的 payload 應被略過
				return redis.NewStringSliceResult([]string{QueueKey, "{not json"}, nil)
			case 3:
				return redis.NewStringSliceResult([]string{QueueKey, string(payload)}, nil)
			default:
				cancel()
				return redis.NewStringSliceResult(nil, context.Canceled)
			}
		},
	}

	sent := make(chan string, 1)
	m := &FakeMailer{SendFn: func(to, subject, body string) error {
		sent <- to
		return nil
	}}

	p := NewDeliveryPool(1)
	defer p.Stop()

	done := make(chan struct{})
	go func() {
		NewWorker(c, m, p).Run(ctx)
		close(done)
	}()

	select {
	case to := <-sent:
		require.Equal(t, "a@b.c", to)
	case <-time.After(3 * time.Second):
		t.Fatal("mail not sent")
	}

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("worker did not stop")
	}
	require.GreaterOrEqual(t, calls, 3)
}

func TestWorkerRunStopsImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewDeliveryPool(1)
	defer p.Stop()

	done := make(chan struct{})
	go func() {
		NewWorker(&cache.FakeCache{}, &FakeMailer{}, p).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not observe cancellation")
	}
}
