package repair

import (
	"math/rand"
	"time"
)

// RetryConfig holds retry configuration for proposer calls.
type RetryConfig struct {
	// MaxAttempts is the maximum number of proposer calls per escalation.
	MaxAttempts int

	// BackoffBase is the initial backoff duration.
	BackoffBase time.Duration

	// BackoffMultiplier is applied to backoff on each retry.
	BackoffMultiplier float64

	// MaxBackoff caps the maximum backoff duration.
	MaxBackoff time.Duration

	// Timeout bounds each individual proposer call.
	Timeout time.Duration
}

// DefaultRetryConfig returns sensible retry defaults for proposer calls.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:       3,
		BackoffBase:       2 * time.Second,
		BackoffMultiplier: 2.0,
		MaxBackoff:        30 * time.Second,
		Timeout:           2 * time.Minute,
	}
}

// backoff computes the exponential backoff for an attempt, with jitter to
// avoid synchronized retries across concurrent escalations.
func (c RetryConfig) backoff(attempt int) time.Duration {
	multiplier := 1.0
	for i := 1; i < attempt; i++ {
		multiplier *= c.BackoffMultiplier
	}

	d := time.Duration(float64(c.BackoffBase) * multiplier)
	if d > c.MaxBackoff {
		d = c.MaxBackoff
	}

	jitter := float64(d) * 0.25 * (rand.Float64()*2 - 1)
	return d + time.Duration(jitter)
}
