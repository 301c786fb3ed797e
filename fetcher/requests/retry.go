package requests

import (
	"net/http"
	"time"

	"riftwatch/pkg/config"
)

// RetryPolicy retries rate limited upstream calls with linear backoff.
// The wait after attempt n is n times the backoff step, so three exhausted
// attempts with the default step wait 2s, 4s and 6s.
type RetryPolicy struct {
	maxAttempts int
	backoffStep time.Duration
	sleep       func(time.Duration)
}

// NewRetryPolicy creates a policy with explicit settings.
func NewRetryPolicy(maxAttempts int, backoffStep time.Duration) *RetryPolicy {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &RetryPolicy{
		maxAttempts: maxAttempts,
		backoffStep: backoffStep,
		sleep:       time.Sleep,
	}
}

// DefaultRetryPolicy creates a policy from the loaded configuration.
func DefaultRetryPolicy() *RetryPolicy {
	return NewRetryPolicy(config.Retry.MaxAttempts, config.Retry.BackoffStep)
}

// WithSleep swaps the sleep function, used by tests to run with a fake clock.
func (p *RetryPolicy) WithSleep(sleep func(time.Duration)) *RetryPolicy {
	p.sleep = sleep
	return p
}

// Do runs the request function until it returns anything other than a rate
// limit, up to the attempt budget. The first non-429 response (success or
// other error status) is returned immediately. When every attempt is rate
// limited the last 429 response is returned so the caller can map it.
func (p *RetryPolicy) Do(fn func() (*http.Response, error)) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		resp, err = fn()
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		// Still rate limited: back off before the next attempt. Intermediate
		// bodies are drained here, the final one is the caller's to close.
		if attempt < p.maxAttempts {
			resp.Body.Close()
		}
		p.sleep(time.Duration(attempt) * p.backoffStep)
	}

	return resp, nil
}
