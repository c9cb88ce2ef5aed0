// File: internal/mail/worker.go
package mail

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"skincare-api/internal/cache"

	"github.com/redis/go-redis/v9"
)

// popTimeout BRPop 單次等待時間，到期後重新檢查 ctx
const popTimeout = 5 * time.Second

// Worker 消費 OTP 郵件佇列並交由 DeliveryPool 寄送
// 寄送失敗僅記錄，不重試也不回報給觸發請求
type Worker struct {
	cache  cache.Cache
	mailer Mailer
	pool   *DeliveryPool
}

func NewWorker(c cache.Cache, m Mailer, p *DeliveryPool) *Worker {
	return &Worker{cache: c, mailer: m, pool: p}
}

// Run 阻塞式消費迴圈，ctx 取消後返回
func (w *Worker) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		res, err := w.cache.BRPop(ctx, popTimeout, QueueKey).Result()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			// 佇列為空時 BRPop 以 redis.Nil 返回
			if !errors.Is(err, redis.Nil) {
				log.Printf("mail worker: pop failed: %v", err)
			}
			continue
		}
		// BRPop 回傳 [key, value]
		if len(res) != 2 {
			continue
		}

		var cmd Command
		if err := json.Unmarshal([]byte(res[1]), &cmd); err != nil {
			log.Printf("mail worker: bad command: %v", err)
			continue
		}

		if err := w.pool.Submit(ctx, func() {
			if err := w.mailer.Send(cmd.Email, OTPSubject, OTPBody(cmd.Email, cmd.Code)); err != nil {
				log.Printf("mail worker: send to %s failed: %v", cmd.Email, err)
			}
		}); err != nil {
			return
		}
	}
}
