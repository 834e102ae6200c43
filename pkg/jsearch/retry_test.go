package jsearch

import (
	"context"
	"testing"
	"time"
)

func TestDelayGrowsMonotonically(t *testing.T) {
	policy := RetryPolicy{
		MaxAttempts: 5,
		BaseDelay:   100 * time.Millisecond,
		MaxDelay:    time.Minute,
		Factor:      2.0,
	}

	prev := time.Duration(-1)
	for attempt := 0; attempt < 5; attempt++ {
		d := policy.Delay(attempt)
		if d <= prev {
			t.Fatalf("delay for attempt %d (%v) not greater than previous (%v)", attempt, d, prev)
		}
		prev = d
	}
}

func TestDelayCapsAtMax(t *testing.T) {
	policy := RetryPolicy{
		MaxAttempts: 10,
		BaseDelay:   time.Second,
		MaxDelay:    4 * time.Second,
		Factor:      2.0,
	}

	if d := policy.Delay(9); d != 4*time.Second {
		t.Fatalf("expected delay capped at 4s, got %v", d)
	}
}

func TestDelayJitterStaysInBounds(t *testing.T) {
	policy := RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    time.Minute,
		Factor:      2.0,
		Jitter:      true,
	}

	for i := 0; i < 100; i++ {
		d := policy.Delay(0)
		if d < 800*time.Millisecond || d > 1200*time.Millisecond {
			t.Fatalf("jittered delay %v outside ±20%% of base", d)
		}
	}
}

func TestDelayZeroValueUsesDefaults(t *testing.T) {
	var policy RetryPolicy

	if got := policy.maxAttempts(); got != defaultMaxAttempts {
		t.Fatalf("expected %d default attempts, got %d", defaultMaxAttempts, got)
	}
	if d := policy.Delay(0); d != defaultBaseDelay {
		t.Fatalf("expected default base delay %v, got %v", defaultBaseDelay, d)
	}
}

func TestSleepHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := sleep(ctx, time.Minute)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("sleep blocked %v despite cancellation", elapsed)
	}
}
