package smoke

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
)

// runLoad sends cfg.Requests requests from cfg.Workers goroutines,
// alternating creates and lists, and records the counts on report.
func runLoad(ctx context.Context, cfg *Config, c *httpClient, report *Report) {
	var sent, succeeded, failed int64

	jobs := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range jobs {
				atomic.AddInt64(&sent, 1)
				if sendOne(ctx, c, n) {
					atomic.AddInt64(&succeeded, 1)
				} else {
					atomic.AddInt64(&failed, 1)
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for n := 0; n < cfg.Requests; n++ {
			select {
			case <-ctx.Done():
				return
			case jobs <- n:
			}
		}
	}()

	wg.Wait()

	report.RequestsSent = int(atomic.LoadInt64(&sent))
	report.RequestsSucceeded = int(atomic.LoadInt64(&succeeded))
	report.RequestsFailed = int(atomic.LoadInt64(&failed))
}

// sendOne issues request n; even n creates a user, odd n lists users.
func sendOne(ctx context.Context, c *httpClient, n int) bool {
	if n%2 == 0 {
		r, err := c.post(ctx, "/api/users", `{"name":"Load User","email":"load@example.com"}`)
		return err == nil && r.Status == http.StatusCreated
	}
	r, err := c.get(ctx, "/api/users")
	return err == nil && r.Status == http.StatusOK
}
