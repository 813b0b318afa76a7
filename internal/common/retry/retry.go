package retry

import (
	"context"

	"bitbucket.org/Selaras/go-bank-sync/internal/config"

	"github.com/cenkalti/backoff/v4"
)

const DefaultMaxRetries uint64 = 3

type Retryer interface {
	Retry(ctx context.Context, operation func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg *config.ExponentialBackOffConfig
}

/*
NewExponentialBackOff will init Retryer interface.
This retryer implement exponential backoff mechanism.

Example:

Retry(ctx, func() error { return someOperation() })
*/
func NewExponentialBackOff(ebCfg *config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime < 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if ebCfg.MaxRetries <= 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

// Retry will create ExponentialBackOff instance for every execution.
// The "operation" func is retried until it succeeds, returns a permanent
// error (see StopRetryWithErr) or the retry budget runs out.
func (r *exponentialBackoff) Retry(ctx context.Context, operation func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx))
}

// StopRetryWithErr will stop retrying and return the error.
// This function should be called inside "operation" func.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
