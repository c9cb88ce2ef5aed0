// File: internal/jobs/cleanup.go
package jobs

import (
	"context"
	"log"
	"time"

	"skincare-api/internal/database"
	"skincare-api/internal/repository"
)

// DefaultCleanupInterval 清理工作的預設執行間隔
const DefaultCleanupInterval = time.Minute

// RunOTPCleanup 週期性刪除過期且未驗證的 OTP 記錄
// 刪除目標與線上驗證流程互斥，可與請求流量並行；工作本身為冪等
func RunOTPCleanup(ctx context.Context, db database.DB, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repository.DeleteExpiredOTPs(ctx, db)
			if err != nil {
				log.Printf("otp cleanup: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("otp cleanup: removed %d expired otps", n)
			}
		}
	}
}
