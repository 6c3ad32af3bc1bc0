package backoff

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

var MaxRetries uint64 = 5

var InitialInterval = backoff.DefaultInitialInterval

func RetryGeneral(ctx context.Context, op backoff.Operation) (err error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = InitialInterval
	b.MaxElapsedTime = 2 * time.Minute

	err = backoff.Retry(op, backoff.WithContext(
		backoff.WithMaxRetries(b, MaxRetries),
		ctx))
	return err
}

// Permanent marks the error as non-retryable
func Permanent(err error) error {
	return backoff.Permanent(err)
}
