package retry

import (
	"context"
	"fmt"
	"time"

	"kampdata/internal/services"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = 4 * time.Second
	defaultMaxDelay    = 10 * time.Second
)

// Policy bounds the retry loop. The zero value is unusable; call Normalize or
// start from DefaultPolicy.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration

	// Sleeper overrides how delays are performed; tests inject a recorder so
	// retries run instantly.
	Sleeper func(time.Duration)
}

// DefaultPolicy returns the bounds used for extraction calls: three attempts
// with delays of 4s then 8s, capped at 10s.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: defaultMaxAttempts,
		BaseDelay:   defaultBaseDelay,
		MaxDelay:    defaultMaxDelay,
	}
}

// Normalize fills zero or negative fields with defaults.
func (p Policy) Normalize() Policy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = defaultMaxAttempts
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = defaultBaseDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = defaultMaxDelay
	}
	if p.MaxDelay < p.BaseDelay {
		p.MaxDelay = p.BaseDelay
	}
	return p
}

// Delay returns the pause before the attempt following the given 1-based
// attempt number: base for attempt 1, doubling per attempt, capped at MaxDelay.
func (p Policy) Delay(attempt int) time.Duration {
	p = p.Normalize()
	if attempt < 1 {
		attempt = 1
	}
	delay := p.BaseDelay
	for i := 1; i < attempt; i++ {
		if delay > p.MaxDelay/2 {
			return p.MaxDelay
		}
		delay *= 2
	}
	if delay > p.MaxDelay {
		return p.MaxDelay
	}
	return delay
}

// Do runs op until it succeeds, the attempt budget is exhausted, the failure
// is permanent, or the context is cancelled. The error from the final attempt
// is returned annotated with the attempt count.
func Do(ctx context.Context, policy Policy, op func(ctx context.Context) error) error {
	policy = policy.Normalize()
	if ctx == nil {
		ctx = context.Background()
	}

	var lastErr error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if !services.Retryable(lastErr) {
			return lastErr
		}
		if attempt == policy.MaxAttempts {
			break
		}
		if err := sleep(ctx, policy, policy.Delay(attempt)); err != nil {
			return err
		}
	}
	return fmt.Errorf("failed after %d attempts: %w", policy.MaxAttempts, lastErr)
}

func sleep(ctx context.Context, policy Policy, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	if policy.Sleeper != nil {
		policy.Sleeper(delay)
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
