// File: internal/jobs/cleanup_test.go
package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"skincare-api/internal/database"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestRunOTPCleanup(t *testing.T) {
	var calls int32
	db := &database.FakeDB{
		ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			n := atomic.AddInt32(&calls, 1)
			if n == 1 {
				// 錯誤不中斷迴圈
				return pgconn.CommandTag{}, errors.New("boom")
			}
			return pgconn.NewCommandTag("DELETE 2"), nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunOTPCleanup(ctx, db, 10*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) >= 3
	}, 3*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not stop")
	}
}

func TestRunOTPCleanupDefaultInterval(t *testing.T) {
	// interval <= 0 回退為預設值，不會 panic；立即取消即返回
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan struct{})
	go func() {
		RunOTPCleanup(ctx, &database.FakeDB{}, 0)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not stop")
	}
}
