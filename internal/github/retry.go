package github

import (
	"context"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
)

// RetryPolicy retries an operation a bounded number of times with a fixed
// delay. Only errors accepted by Retryable are retried; everything else
// surfaces immediately.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
	Retryable   func(error) bool
}

func NewRetryPolicy(maxAttempts int, delay time.Duration) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		Delay:       delay,
		Retryable:   DefaultRetryable,
	}
}

// DefaultRetryable treats transport errors and server-side failures
// (5xx, 429) as transient.
func DefaultRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == 429
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func (p RetryPolicy) Execute(ctx context.Context, op func() error) error {
	attempts := uint64(0)
	if p.MaxAttempts > 1 {
		attempts = uint64(p.MaxAttempts - 1)
	}

	wrapped := func() error {
		err := op()
		if err != nil && p.Retryable != nil && !p.Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Delay), attempts),
		ctx,
	)
	return backoff.Retry(wrapped, policy)
}
