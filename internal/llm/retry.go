package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider is a decorator that retries transient errors with
// exponential backoff and jitter.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	return retry(ctx, r.config, func(ctx context.Context) (*Response, error) {
		return r.inner.Generate(ctx, req)
	})
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// RetryImageGenerator applies the same policy to image generation.
type RetryImageGenerator struct {
	inner  ImageGenerator
	config RetryConfig
}

// WithImageRetry wraps an ImageGenerator with retry logic.
func WithImageRetry(g ImageGenerator, cfg RetryConfig) ImageGenerator {
	return &RetryImageGenerator{inner: g, config: cfg}
}

func (r *RetryImageGenerator) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResponse, error) {
	return retry(ctx, r.config, func(ctx context.Context) (*ImageResponse, error) {
		return r.inner.GenerateImage(ctx, req)
	})
}

func (r *RetryImageGenerator) ImageModelID() string {
	return r.inner.ImageModelID()
}

func retry[T any](ctx context.Context, cfg RetryConfig, call func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error
	invalidRetried := false

	attempts := max(cfg.MaxAttempts, 1)
	for attempt := range attempts {
		resp, err := runAttempt(ctx, cfg.AttemptTimeout, call)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !shouldRetry(err, &invalidRetried) {
			return zero, err
		}

		// Last attempt, don't sleep.
		if attempt == attempts-1 {
			break
		}

		wait := backoff(cfg, attempt, err)
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
		}
	}

	return zero, lastErr
}

// runAttempt runs one call under the per-attempt deadline. A deadline hit
// while the caller's context is still live is reported as the provider
// being unavailable so it can be retried.
func runAttempt[T any](ctx context.Context, timeout time.Duration, call func(context.Context) (T, error)) (T, error) {
	if timeout <= 0 {
		return call(ctx)
	}
	actx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := call(actx)
	if err != nil && ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
		return resp, &ErrProviderUnavailable{Err: fmt.Errorf("attempt timed out after %s", timeout)}
	}
	return resp, err
}

// shouldRetry determines if an error is retryable.
func shouldRetry(err error, invalidRetried *bool) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Configuration and account problems are not transient.
	var maxTok *ErrMaxTokensExceeded
	var auth *ErrAuth
	var missing *ErrMissingAPIKey
	var quota *ErrQuotaExceeded
	var unsupported *ErrUnsupported
	if errors.As(err, &maxTok) || errors.As(err, &auth) || errors.As(err, &missing) ||
		errors.As(err, &quota) || errors.As(err, &unsupported) {
		return false
	}

	// Invalid responses and empty images get one retry between them.
	var invResp *ErrInvalidResponse
	var noImage *ErrNoImage
	if errors.As(err, &invResp) || errors.As(err, &noImage) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	// Rate limit, provider unavailable and network errors are transient.
	return true
}

// backoff computes the wait duration for the given attempt.
func backoff(cfg RetryConfig, attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(cfg.InitialWait) * math.Pow(cfg.Multiplier, float64(attempt))
	if wait > float64(cfg.MaxWait) {
		wait = float64(cfg.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
