// Package thunk implements the deferred-value primitive the rest of the
// library is built on: a cell that holds a zero-argument pure computation
// and caches its result on first force.
package thunk

import (
	"fmt"
	"sync/atomic"

	"github.com/lazyeval-go/lazyeval/shared/evlog"
)

// Func is a zero-argument pure computation. Purity is a caller obligation:
// the library may run a Func more than once under races and assumes every
// run yields the same value.
type Func[T any] func() T

// Cell is an indirection cell holding either an unevaluated computation or
// a cached result. The transition to cached happens at most logically once
// and never reverts.
type Cell[T any] struct {
	result  atomic.Pointer[T]
	compute Func[T]
}

// NewCell wraps a computation without running it.
func NewCell[T any](compute Func[T]) *Cell[T] {
	if compute == nil {
		panic("thunk: nil computation")
	}
	return &Cell[T]{compute: compute}
}

// Force returns the cell's value, evaluating the computation on first
// demand. Publication is a single compare-and-swap: racing forcers may each
// run the computation, the first published result wins, and every caller
// converges on it.
//
// Panics are not cached. A computation that panics publishes nothing, the
// panic propagates to the forcing caller, and the next Force runs the
// computation again.
func (c *Cell[T]) Force() T {
	if p := c.result.Load(); p != nil {
		return *p
	}
	v := c.compute()
	if c.result.CompareAndSwap(nil, &v) {
		if evlog.Enabled() {
			evlog.Evaluated("thunk", fmt.Sprintf("%p", c))
		}
		return v
	}
	if evlog.Enabled() {
		evlog.Discarded("thunk", fmt.Sprintf("%p", c))
	}
	return *c.result.Load()
}

// Forced reports whether the cell has published a result.
func (c *Cell[T]) Forced() bool {
	return c.result.Load() != nil
}

// Memoize returns an accessor that computes fn at most logically once and
// serves the cached result on every later call.
//
// Memoizing an already-memoized accessor is tolerated rather than detected:
// each wrap adds one cell, the outer cell caches after a single delegation,
// so forcing a k-deep composition costs one O(k) walk and O(1) afterwards.
func Memoize[T any](fn Func[T]) Func[T] {
	return NewCell(fn).Force
}
