package pair

import (
	"github.com/lazyeval-go/lazyeval/shared/fn"
	"github.com/lazyeval-go/lazyeval/shared/helper"
	"github.com/lazyeval-go/lazyeval/thunk"
)

// MapBoth lazily applies f to the first element and g to the second.
func MapBoth[T, U, R, S any](p *Pair[T, U], f func(T) R, g func(U) S) *Pair[R, S] {
	return Lazy(func() *Pair[R, S] {
		return MatchLazy(p, func(x thunk.Func[T], y thunk.Func[U]) *Pair[R, S] {
			return OfLazy(
				func() R { return f(x()) },
				func() S { return g(y()) },
			)
		})
	})
}

// MapFirst lazily applies f to the first element.
func MapFirst[T, U, R any](p *Pair[T, U], f func(T) R) *Pair[R, U] {
	return Lazy(func() *Pair[R, U] {
		return MatchLazy(p, func(x thunk.Func[T], y thunk.Func[U]) *Pair[R, U] {
			return OfLazy(func() R { return f(x()) }, y)
		})
	})
}

// MapSecond lazily applies f to the second element.
func MapSecond[T, U, S any](p *Pair[T, U], f func(U) S) *Pair[T, S] {
	return Lazy(func() *Pair[T, S] {
		return MatchLazy(p, func(x thunk.Func[T], y thunk.Func[U]) *Pair[T, S] {
			return OfLazy(x, func() S { return f(y()) })
		})
	})
}

// Map applies to each element a function over a common type of both
// elements.
func Map[T, R any](p *Pair[T, T], f func(T) R) *Pair[R, R] {
	return MapBoth(p, f, f)
}

// ForEach performs an action on each element of a same-typed pair, first
// element first.
func ForEach[T any](p *Pair[T, T], action func(T)) {
	p.ForBoth(func(first, second T) {
		action(first)
		action(second)
	})
}

// Swap lazily exchanges the elements of this pair.
func (p *Pair[T, U]) Swap() *Pair[U, T] {
	return Lazy(func() *Pair[U, T] {
		return MatchLazy(p, fn.Flip(OfLazy[U, T]))
	})
}

// Duplicate is a pair holding the same value in both slots.
func Duplicate[T any](value T) *Pair[T, T] {
	return Of(value, value)
}

// DuplicateLazy is a pair holding the same deferred value in both slots;
// the value is computed at most once.
func DuplicateLazy[T any](value thunk.Func[T]) *Pair[T, T] {
	return Lazy(func() *Pair[T, T] {
		memoized := thunk.Memoize(value)
		return OfLazy(memoized, memoized)
	})
}

// Entry is a key-value view of a pair.
type Entry[T, U any] struct {
	Key   T
	Value U
}

// From is a pair built from a key-value entry.
func From[T, U any](entry Entry[T, U]) *Pair[T, U] {
	return Of(entry.Key, entry.Value)
}

// Entry forces both elements and returns them as a key-value entry.
func (p *Pair[T, U]) Entry() Entry[T, U] {
	c := p.resolve()
	return Entry[T, U]{Key: c.first(), Value: c.second()}
}

// Cast reinterprets a type-erased value as a pair. Safe wherever a pair was
// widened to any, because pairs are immutable. Fails if the value is not a
// *Pair[T, U].
func Cast[T, U any](p any) (*Pair[T, U], error) {
	return helper.TypedValueOf[*Pair[T, U]](func() (any, error) { return p, nil })
}

// MustCast is the panic-on-failure variant of Cast.
func MustCast[T, U any](p any) *Pair[T, U] {
	return helper.MustTypedValue[*Pair[T, U]](func() (any, error) { return p, nil })
}
