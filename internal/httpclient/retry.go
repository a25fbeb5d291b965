package httpclient

import (
	"context"
	"time"
)

// RetryPolicy is an explicit bounded-retry policy: a total attempt ceiling
// and a backoff function from attempt number (1-based) to delay. It carries
// no scheduling state of its own; callers drive the loop.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
}

// FixedDelay returns a policy that waits the same delay between attempts.
func FixedDelay(maxAttempts int, delay time.Duration) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		Backoff:     func(int) time.Duration { return delay },
	}
}

// LinearBackoff returns a policy whose delay grows as base * attempt.
func LinearBackoff(maxAttempts int, base time.Duration) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		Backoff:     func(attempt int) time.Duration { return base * time.Duration(attempt) },
	}
}

// Wait sleeps for the delay of the given attempt, honoring cancellation.
func (p RetryPolicy) Wait(ctx context.Context, attempt int) error {
	delay := p.Backoff(attempt)
	if delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
