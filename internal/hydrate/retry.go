package hydrate

import (
	"context"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// RetryPolicy retries fetches that fail with a transient error.
type RetryPolicy struct {
	// Retries is the number of extra attempts after the first one.
	Retries     int
	MinWait     time.Duration
	MaxWait     time.Duration
	IsTransient func(error) bool
}

func withRetry[T any](ctx context.Context, p RetryPolicy, fetch func(context.Context) (T, error)) (T, error) {
	for attempt := 0; ; attempt++ {
		val, err := fetch(ctx)
		if err == nil || attempt >= p.Retries || p.IsTransient == nil || !p.IsTransient(err) {
			return val, err
		}

		timer := time.NewTimer(retryablehttp.DefaultBackoff(p.MinWait, p.MaxWait, attempt, nil))
		select {
		case <-ctx.Done():
			timer.Stop()
			return val, err
		case <-timer.C:
		}
	}
}
