// Package poll implements a bounded fixed-interval retry loop used to
// wait for asynchronous remote state transitions.
package poll

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Policy bounds a polling loop. Interval is the sleep between
// attempts; when IntervalMax is non-zero the sleep is drawn uniformly
// from [Interval, IntervalMax] instead. There is deliberately no
// exponential backoff: call volume is one instance at a time.
type Policy struct {
	MaxAttempts int
	Interval    time.Duration
	IntervalMax time.Duration
}

func (p Policy) wait() time.Duration {
	if p.IntervalMax <= p.Interval {
		return p.Interval
	}
	return p.Interval + time.Duration(rand.Int63n(int64(p.IntervalMax-p.Interval)))
}

// ExhaustedError reports that the attempt budget ran out before the
// readiness predicate held. LastErr carries the final probe error, if
// the final attempt failed rather than returning a not-ready value.
type ExhaustedError struct {
	Attempts int
	LastErr  error
}

func (e *ExhaustedError) Error() string {
	if e.LastErr != nil {
		return fmt.Sprintf("not ready after %d attempts, last error: %v", e.Attempts, e.LastErr)
	}
	return fmt.Sprintf("not ready after %d attempts", e.Attempts)
}

func (e *ExhaustedError) Unwrap() error {
	return e.LastErr
}

// Until repeatedly invokes probe until ready returns true or the
// attempt budget is exhausted. Every probe call counts as one attempt,
// whether it returns an error or a not-ready value. On success the
// ready value is returned after exactly as many probe calls as it took
// to observe it. After the final failed attempt Until returns the zero
// value and a *ExhaustedError.
//
// Between attempts Until sleeps per the policy; it does not sleep
// after the final attempt. Cancelling ctx aborts the wait.
func Until[T any](ctx context.Context, p Policy, probe func(context.Context) (T, error), ready func(T) bool) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		v, err := probe(ctx)
		if err == nil && ready(v) {
			return v, nil
		}
		lastErr = err

		if attempt == p.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(p.wait()):
		}
	}

	return zero, &ExhaustedError{Attempts: p.MaxAttempts, LastErr: lastErr}
}
