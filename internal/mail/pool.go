// File: internal/mail/pool.go
package mail

import (
	"context"
	"sync"
)

// DeliveryPool 以固定數量的寄送 goroutine 消化排入的寄信工作
// 佇列有界（容量等於 goroutine 數），滿時 Submit 阻塞直到有空位或 ctx 取消
type DeliveryPool struct {
	queue chan func()
	wg    sync.WaitGroup
}

// NewDeliveryPool 建立 n 個寄送 goroutine，n <= 0 視為 1
func NewDeliveryPool(n int) *DeliveryPool {
	if n <= 0 {
		n = 1
	}
	p := &DeliveryPool{queue: make(chan func(), n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for deliver := range p.queue {
				deliver()
			}
		}()
	}
	return p
}

// Submit 排入一件寄送工作
func (p *DeliveryPool) Submit(ctx context.Context, deliver func()) error {
	select {
	case p.queue <- deliver:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop 關閉佇列並等待已接受的工作寄送完畢
func (p *DeliveryPool) Stop() {
	close(p.queue)
	p.wg.Wait()
}
