package jsearch

import (
	"context"
	"math"
	"math/rand"
	"time"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = 500 * time.Millisecond
	defaultMaxDelay    = 10 * time.Second
	defaultFactor      = 2.0
)

// RetryPolicy describes the bounded exponential backoff applied to
// retryable failures. The zero value is usable and falls back to defaults.
type RetryPolicy struct {
	// MaxAttempts bounds the total number of attempts, first try included.
	MaxAttempts int

	BaseDelay time.Duration
	MaxDelay  time.Duration
	Factor    float64

	// Jitter, when true, randomizes each delay by up to ±20% so that
	// concurrent callers do not retry in lockstep against a rate-limited
	// upstream.
	Jitter bool

	// rand is injected by tests for deterministic jitter.
	rand *rand.Rand
}

// DefaultRetryPolicy mirrors the fixed bound the server ships with.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: defaultMaxAttempts,
		BaseDelay:   defaultBaseDelay,
		MaxDelay:    defaultMaxDelay,
		Factor:      defaultFactor,
		Jitter:      true,
	}
}

func (p RetryPolicy) maxAttempts() int {
	if p.MaxAttempts <= 0 {
		return defaultMaxAttempts
	}
	return p.MaxAttempts
}

// Delay computes the backoff before the given retry. attempt is zero-based:
// Delay(0) is the wait after the first failed try.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	base := p.BaseDelay
	if base <= 0 {
		base = defaultBaseDelay
	}
	max := p.MaxDelay
	if max <= 0 {
		max = defaultMaxDelay
	}
	factor := p.Factor
	if factor <= 1 {
		factor = defaultFactor
	}

	delay := float64(base) * math.Pow(factor, float64(attempt))
	if delay > float64(max) {
		delay = float64(max)
	}

	if p.Jitter {
		r := p.rand
		jitter := (randFloat(r) - 0.5) * delay * 0.4 // ±20%
		delay += jitter
	}

	if delay < 0 {
		return 0
	}
	return time.Duration(delay)
}

func randFloat(r *rand.Rand) float64 {
	if r != nil {
		return r.Float64()
	}
	return rand.Float64()
}

// sleep waits out the backoff delay unless the caller cancels first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
