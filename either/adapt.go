package either

import (
	"errors"
	"time"

	"github.com/lazyeval-go/lazyeval/shared/evlog"
)

// Result carries the settled outcome of a computation that may fail.
type Result[R any] struct {
	Value R
	Err   error
}

// ErrNoResult reports a future channel that closed without delivering a
// result.
var ErrNoResult = errors.New("either: future closed without a result")

// From captures a fallible computation: a returned error becomes the left
// variant, a produced value the right variant. The computation runs at most
// once, when the either is first inspected.
func From[R any](compute func() (R, error)) *Either[error, R] {
	return Lazy(func() *Either[error, R] {
		v, err := compute()
		if err != nil {
			return Left[error, R](err)
		}
		return Right[error](v)
	})
}

// FromResult converts an already-settled result.
func FromResult[R any](res Result[R]) *Either[error, R] {
	if res.Err != nil {
		return Left[error, R](res.Err)
	}
	return Right[error](res.Value)
}

// FromFuture adapts a future handle that settles exactly once. The receive
// is deferred and memoized: the channel is consumed the first time the
// either is inspected and never re-queried afterwards. Inspecting the
// either before the future has settled blocks until it does.
func FromFuture[R any](future <-chan Result[R]) *Either[error, R] {
	id := evlog.NewID()
	created := time.Now()
	return Lazy(func() *Either[error, R] {
		res, ok := <-future
		if evlog.Enabled() {
			evlog.Settled(id, evlog.Span(created), !ok || res.Err != nil)
		}
		if !ok {
			return Left[error, R](ErrNoResult)
		}
		return FromResult(res)
	})
}
