package github

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestRetryPolicyExhaustsAttempts(t *testing.T) {
	policy := RetryPolicy{
		MaxAttempts: 3,
		Delay:       time.Millisecond,
		Retryable:   func(error) bool { return true },
	}

	calls := 0
	err := policy.Execute(context.Background(), func() error {
		calls++
		return errors.New("transient")
	})
	if err == nil {
		t.Fatal("Expected an error after exhausted retries")
	}
	if calls != 3 {
		t.Fatalf("Invalid number of attempts: %d, expected 3", calls)
	}
}

func TestRetryPolicyStopsOnSuccess(t *testing.T) {
	policy := NewRetryPolicy(5, time.Millisecond)
	policy.Retryable = func(error) bool { return true }

	calls := 0
	err := policy.Execute(context.Background(), func() error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("Invalid number of attempts: %d, expected 2", calls)
	}
}

func TestRetryPolicyPermanentError(t *testing.T) {
	policy := NewRetryPolicy(5, time.Millisecond)

	calls := 0
	err := policy.Execute(context.Background(), func() error {
		calls++
		return &APIError{StatusCode: 404, URL: "/missing"}
	})
	if err == nil {
		t.Fatal("Expected an error")
	}
	if calls != 1 {
		t.Fatalf("Permanent error retried %d times", calls)
	}
}

func TestDefaultRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"server error", &APIError{StatusCode: 502}, true},
		{"rate limited", &APIError{StatusCode: 429}, true},
		{"not found", &APIError{StatusCode: 404}, false},
		{"unauthorized", &APIError{StatusCode: 401}, false},
		{"wrapped server error", errors.Wrap(&APIError{StatusCode: 500}, "request failed"), true},
	}

	for _, tc := range cases {
		if got := DefaultRetryable(tc.err); got != tc.want {
			t.Errorf("%s: DefaultRetryable = %v, expected %v", tc.name, got, tc.want)
		}
	}
}
