// Package either provides the sum of two types: a value that is exactly
// one of a left or a right variant, with the same laziness and memoization
// guarantees as the pair it is encoded over.
//
// An either is represented as a degenerate product: a left value v is the
// pair (v, unit) and a right value v is the pair (unit, v), so its hash and
// rendering agree with pair.Of(v, unit) and pair.Of(unit, v) respectively.
package either

import (
	"errors"

	"github.com/lazyeval-go/lazyeval/pair"
	"github.com/lazyeval-go/lazyeval/thunk"
	"github.com/lazyeval-go/lazyeval/unit"
)

var (
	// ErrNotLeft reports a left accessor applied to a right value.
	ErrNotLeft = errors.New("either: not a left value")
	// ErrNotRight reports a right accessor applied to a left value.
	ErrNotRight = errors.New("either: not a right value")
)

// Either holds exactly one of a left value or a right value. The zero value
// is not meaningful; use the constructors.
type Either[L, R any] struct {
	isLeft  bool
	enc     *pair.Pair[any, any]
	resolve thunk.Func[*Either[L, R]] // non-nil when the identity is deferred
}

// Left is an either holding an eager left value.
func Left[L, R any](value L) *Either[L, R] {
	return &Either[L, R]{isLeft: true, enc: pair.Of[any, any](value, unit.Value())}
}

// Right is an either holding an eager right value.
func Right[L, R any](value R) *Either[L, R] {
	return &Either[L, R]{enc: pair.Of[any, any](unit.Value(), value)}
}

// LeftLazy is an either holding a deferred left value.
func LeftLazy[L, R any](value thunk.Func[L]) *Either[L, R] {
	return &Either[L, R]{
		isLeft: true,
		enc:    pair.OfLazyFirst(func() any { return value() }, any(unit.Value())),
	}
}

// RightLazy is an either holding a deferred right value.
func RightLazy[L, R any](value thunk.Func[R]) *Either[L, R] {
	return &Either[L, R]{
		enc: pair.OfLazySecond(any(unit.Value()), func() any { return value() }),
	}
}

// Lazy is an either whose entire identity, variant included, is deferred.
// The supply runs at most once, when the either is first inspected.
func Lazy[L, R any](supply func() *Either[L, R]) *Either[L, R] {
	if supply == nil {
		panic("either: nil supply")
	}
	return &Either[L, R]{resolve: thunk.Memoize(supply)}
}

// settle walks deferred identities to the concrete variant. Each hop is
// memoized at construction, so repeated settles are O(1).
func (e *Either[L, R]) settle() *Either[L, R] {
	s := e
	for s.resolve != nil {
		s = s.resolve()
	}
	return s
}

// IsLeft reports whether this either holds a left value.
func (e *Either[L, R]) IsLeft() bool {
	return e.settle().isLeft
}

// IsRight reports whether this either holds a right value.
func (e *Either[L, R]) IsRight() bool {
	return !e.settle().isLeft
}

// Match forces the present value and applies the matching function.
func Match[L, R, V any](e *Either[L, R], onLeft func(L) V, onRight func(R) V) V {
	s := e.settle()
	if s.isLeft {
		return onLeft(s.enc.First().(L))
	}
	return onRight(s.enc.Second().(R))
}

// MatchLazy applies the matching function to an at-most-once accessor of
// the present value without forcing it.
func MatchLazy[L, R, V any](e *Either[L, R], onLeft func(thunk.Func[L]) V, onRight func(thunk.Func[R]) V) V {
	s := e.settle()
	return pair.MatchLazy(s.enc, func(first, second thunk.Func[any]) V {
		if s.isLeft {
			return onLeft(func() L { return first().(L) })
		}
		return onRight(func() R { return second().(R) })
	})
}

// Left returns the left value if present.
func (e *Either[L, R]) Left() (L, bool) {
	s := e.settle()
	if !s.isLeft {
		var zero L
		return zero, false
	}
	return s.enc.First().(L), true
}

// Right returns the right value if present.
func (e *Either[L, R]) Right() (R, bool) {
	s := e.settle()
	if s.isLeft {
		var zero R
		return zero, false
	}
	return s.enc.Second().(R), true
}

// LeftOr returns the left value, or def if this is a right.
func (e *Either[L, R]) LeftOr(def L) L {
	if v, ok := e.Left(); ok {
		return v
	}
	return def
}

// LeftOrGet returns the left value, or the supplied default if this is a
// right. The default is only computed when needed.
func (e *Either[L, R]) LeftOrGet(get thunk.Func[L]) L {
	if v, ok := e.Left(); ok {
		return v
	}
	return get()
}

// RightOr returns the right value, or def if this is a left.
func (e *Either[L, R]) RightOr(def R) R {
	if v, ok := e.Right(); ok {
		return v
	}
	return def
}

// RightOrGet returns the right value, or the supplied default if this is a
// left. The default is only computed when needed.
func (e *Either[L, R]) RightOrGet(get thunk.Func[R]) R {
	if v, ok := e.Right(); ok {
		return v
	}
	return get()
}

// MustLeft returns the left value and panics with ErrNotLeft on a right.
// Asking a right value for its left side is a programmer error.
func (e *Either[L, R]) MustLeft() L {
	v, ok := e.Left()
	if !ok {
		panic(ErrNotLeft)
	}
	return v
}

// MustLeftErr is MustLeft with a caller-supplied failure.
func (e *Either[L, R]) MustLeftErr(err error) L {
	v, ok := e.Left()
	if !ok {
		panic(err)
	}
	return v
}

// MustRight returns the right value and panics with ErrNotRight on a left.
func (e *Either[L, R]) MustRight() R {
	v, ok := e.Right()
	if !ok {
		panic(ErrNotRight)
	}
	return v
}

// MustRightErr is MustRight with a caller-supplied failure.
func (e *Either[L, R]) MustRightErr(err error) R {
	v, ok := e.Right()
	if !ok {
		panic(err)
	}
	return v
}

// Swap lazily exchanges the variants.
func (e *Either[L, R]) Swap() *Either[R, L] {
	return Lazy(func() *Either[R, L] {
		return MatchLazy(e,
			func(l thunk.Func[L]) *Either[R, L] { return RightLazy[R](l) },
			func(r thunk.Func[R]) *Either[R, L] { return LeftLazy[R, L](r) },
		)
	})
}

// MapLeft lazily applies f to the left value, passing a right through.
func MapLeft[L, R, M any](e *Either[L, R], f func(L) M) *Either[M, R] {
	return Lazy(func() *Either[M, R] {
		return MatchLazy(e,
			func(l thunk.Func[L]) *Either[M, R] {
				return LeftLazy[M, R](func() M { return f(l()) })
			},
			func(r thunk.Func[R]) *Either[M, R] { return RightLazy[M](r) },
		)
	})
}

// MapRight lazily applies f to the right value, passing a left through.
func MapRight[L, R, S any](e *Either[L, R], f func(R) S) *Either[L, S] {
	return Lazy(func() *Either[L, S] {
		return MatchLazy(e,
			func(l thunk.Func[L]) *Either[L, S] { return LeftLazy[L, S](l) },
			func(r thunk.Func[R]) *Either[L, S] {
				return RightLazy[L](func() S { return f(r()) })
			},
		)
	})
}

// Merge collapses a same-typed either into its present value.
func Merge[T any](e *Either[T, T]) T {
	s := e.settle()
	if s.isLeft {
		return s.enc.First().(T)
	}
	return s.enc.Second().(T)
}

// Equal reports structural equality: same variant, equal forced value.
// Left and right wrapping the same value are never equal.
func (e *Either[L, R]) Equal(o *Either[L, R]) bool {
	if o == nil {
		return false
	}
	se, so := e.settle(), o.settle()
	return se.isLeft == so.isLeft && se.enc.Equal(so.enc)
}

// Hash delegates to the degenerate-product encoding, so a left value
// hashes exactly as pair.Of(value, unit) and a right value as
// pair.Of(unit, value).
func (e *Either[L, R]) Hash() uint64 {
	return e.settle().enc.Hash()
}

// String renders the degenerate-product encoding: "(v, ())" for a left
// value, "((), v)" for a right value.
func (e *Either[L, R]) String() string {
	return e.settle().enc.String()
}
