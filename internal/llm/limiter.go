package llm

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Limits bounds outbound generation calls. Zero values disable the
// corresponding bound.
type Limits struct {
	Timeout       time.Duration
	MaxConcurrent int64
	RatePerSecond float64
	Burst         int
}

// LimitedGenerator applies a per-call timeout, a cap on in-flight calls and a
// token-bucket rate limit in front of another Generator. Waiting for a slot or
// a token is charged to the caller's context.
type LimitedGenerator struct {
	inner   Generator
	timeout time.Duration
	sem     *semaphore.Weighted
	limiter *rate.Limiter
}

func WithLimits(g Generator, l Limits) *LimitedGenerator {
	lg := &LimitedGenerator{inner: g, timeout: l.Timeout}
	if l.MaxConcurrent > 0 {
		lg.sem = semaphore.NewWeighted(l.MaxConcurrent)
	}
	if l.RatePerSecond > 0 {
		burst := l.Burst
		if burst < 1 {
			burst = 1
		}
		lg.limiter = rate.NewLimiter(rate.Limit(l.RatePerSecond), burst)
	}
	return lg
}

func (g *LimitedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.sem != nil {
		if err := g.sem.Acquire(ctx, 1); err != nil {
			return "", fmt.Errorf("waiting for generation slot: %w", err)
		}
		defer g.sem.Release(1)
	}
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", &ErrRateLimit{Err: fmt.Errorf("waiting for rate limiter: %w", err)}
		}
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	return g.inner.Generate(ctx, prompt)
}

func (g *LimitedGenerator) ModelID() string { return g.inner.ModelID() }

func (g *LimitedGenerator) Unwrap() Generator { return g.inner }
