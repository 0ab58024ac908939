package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kampdata/internal/retry"
	"kampdata/internal/services"
)

func TestDelayGrowsAndCaps(t *testing.T) {
	policy := retry.Policy{MaxAttempts: 5, BaseDelay: 4 * time.Second, MaxDelay: 10 * time.Second}
	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 4 * time.Second},
		{2, 8 * time.Second},
		{3, 10 * time.Second},
		{4, 10 * time.Second},
	}
	for _, tc := range cases {
		if got := policy.Delay(tc.attempt); got != tc.want {
			t.Fatalf("Delay(%d) = %s, want %s", tc.attempt, got, tc.want)
		}
	}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	var delays []time.Duration
	policy := retry.Policy{
		MaxAttempts: 3,
		BaseDelay:   4 * time.Second,
		MaxDelay:    10 * time.Second,
		Sleeper:     func(d time.Duration) { delays = append(delays, d) },
	}
	calls := 0
	err := retry.Do(context.Background(), policy, func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient boom")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
	if len(delays) != 2 || delays[0] != 4*time.Second || delays[1] != 8*time.Second {
		t.Fatalf("unexpected delays: %v", delays)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	policy := retry.Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    time.Second,
		Sleeper:     func(time.Duration) {},
	}
	base := errors.New("still failing")
	calls := 0
	err := retry.Do(context.Background(), policy, func(context.Context) error {
		calls++
		return base
	})
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected final error to wrap base failure, got %v", err)
	}
}

func TestDoStopsOnPermanentFailure(t *testing.T) {
	policy := retry.Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    time.Second,
		Sleeper:     func(time.Duration) { t.Fatal("must not sleep for permanent failures") },
	}
	calls := 0
	err := retry.Do(context.Background(), policy, func(context.Context) error {
		calls++
		return services.Wrap(services.ErrConfiguration, "extractor", "chat", "api key missing", nil)
	})
	if calls != 1 {
		t.Fatalf("expected a single attempt, got %d", calls)
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration marker, got %v", err)
	}
}

func TestDoHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	policy := retry.Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    time.Second,
		Sleeper:     func(time.Duration) { cancel() },
	}
	err := retry.Do(ctx, policy, func(context.Context) error {
		return errors.New("boom")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
