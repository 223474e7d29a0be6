package pair

import (
	"fmt"
	"sync/atomic"

	"github.com/lazyeval-go/lazyeval/shared/evlog"
	"github.com/lazyeval-go/lazyeval/shared/fn"
	"github.com/lazyeval-go/lazyeval/thunk"
)

// core is the resolved form of a pair: one accessor per slot. The once
// flags record whether an accessor already computes at most once (a
// constant or a memoized cell), so matching and flattening know when a
// fresh memoizing wrapper is needed.
type core[T, U any] struct {
	first      thunk.Func[T]
	second     thunk.Func[U]
	firstOnce  bool
	secondOnce bool
}

func (c *core[T, U]) lazyFirst() thunk.Func[T] {
	if c.firstOnce {
		return c.first
	}
	return thunk.Memoize(c.first)
}

func (c *core[T, U]) lazySecond() thunk.Func[U] {
	if c.secondOnce {
		return c.second
	}
	return thunk.Memoize(c.second)
}

// Pair is an immutable ordered 2-tuple. A Pair is either direct, owning its
// two slot accessors, or a proxy lazily redefined in terms of another pair.
// Proxies resolve to their principal on first demand; the resolution is
// published once and never reverts.
type Pair[T, U any] struct {
	resolved atomic.Pointer[core[T, U]]
	supply   func() *Pair[T, U] // nil for direct pairs
	eager    bool               // both slots eagerly held; Memoize is a no-op
}

// Of is a pair of eagerly evaluated elements.
func Of[T, U any](first T, second U) *Pair[T, U] {
	p := &Pair[T, U]{eager: true}
	p.resolved.Store(&core[T, U]{
		first:      fn.Constant(first),
		second:     fn.Constant(second),
		firstOnce:  true,
		secondOnce: true,
	})
	return p
}

// OfLazySecond is a pair with an eager first element and a deferred second
// element.
func OfLazySecond[T, U any](first T, second thunk.Func[U]) *Pair[T, U] {
	p := &Pair[T, U]{}
	p.resolved.Store(&core[T, U]{
		first:     fn.Constant(first),
		second:    second,
		firstOnce: true,
	})
	return p
}

// OfLazyFirst is a pair with a deferred first element and an eager second
// element.
func OfLazyFirst[T, U any](first thunk.Func[T], second U) *Pair[T, U] {
	p := &Pair[T, U]{}
	p.resolved.Store(&core[T, U]{
		first:      first,
		second:     fn.Constant(second),
		secondOnce: true,
	})
	return p
}

// OfLazy is a pair of deferred elements.
func OfLazy[T, U any](first thunk.Func[T], second thunk.Func[U]) *Pair[T, U] {
	p := &Pair[T, U]{}
	p.resolved.Store(&core[T, U]{
		first:  first,
		second: second,
	})
	return p
}

// Lazy is a pair whose entire identity is deferred: forcing it yields
// another pair, possibly itself lazily redefined. The supply must produce a
// finite, acyclic chain of redefinitions.
func Lazy[T, U any](supply func() *Pair[T, U]) *Pair[T, U] {
	if supply == nil {
		panic("pair: nil supply")
	}
	return &Pair[T, U]{supply: supply}
}

// resolve walks the proxy chain to its principal and publishes a resolved
// core whose slots each compute at most once. The walk is a loop, so chain
// length never grows the native call stack; the publication is a single
// compare-and-swap into every proxy walked, so later resolves are O(1).
func (p *Pair[T, U]) resolve() *core[T, U] {
	if c := p.resolved.Load(); c != nil {
		return c
	}
	var chain []*Pair[T, U]
	cur := p
	for cur.resolved.Load() == nil {
		chain = append(chain, cur)
		cur = cur.supply()
		if cur == nil {
			panic("pair: supply returned nil pair")
		}
	}
	principal := cur.resolved.Load()
	mc := principal
	if !principal.firstOnce || !principal.secondOnce {
		mc = &core[T, U]{
			first:      principal.lazyFirst(),
			second:     principal.lazySecond(),
			firstOnce:  true,
			secondOnce: true,
		}
	}
	for _, q := range chain {
		q.resolved.CompareAndSwap(nil, mc)
	}
	if evlog.Enabled() {
		evlog.Flattened("pair", fmt.Sprintf("%p", p), len(chain))
	}
	return p.resolved.Load()
}

// Match simulates pattern matching on p, forcing both elements and passing
// them to f.
func Match[T, U, R any](p *Pair[T, U], f func(T, U) R) R {
	c := p.resolve()
	return f(c.first(), c.second())
}

// MatchLazy simulates pattern matching on p without forcing either element:
// f receives one at-most-once accessor per slot and decides whether and in
// what order to force. This preserves the laziness of an underlying pair in
// terms of which another value is lazily defined.
func MatchLazy[T, U, R any](p *Pair[T, U], f func(thunk.Func[T], thunk.Func[U]) R) R {
	c := p.resolve()
	return f(c.lazyFirst(), c.lazySecond())
}

// First forces and returns the first element.
func (p *Pair[T, U]) First() T {
	return p.resolve().first()
}

// Second forces and returns the second element.
func (p *Pair[T, U]) Second() U {
	return p.resolve().second()
}

// ForBoth performs a binary action on the forced elements.
func (p *Pair[T, U]) ForBoth(action func(T, U)) {
	c := p.resolve()
	action(c.first(), c.second())
}

// Memoize returns a pair that computes each slot at most once across all
// future forces, sharing cached results with this pair. A fully eager pair
// has nothing to cache and is returned as is; proxies already resolve to a
// memoized core, so they are returned as is too, avoiding stacked wrappers.
func (p *Pair[T, U]) Memoize() *Pair[T, U] {
	if p.eager || p.supply != nil {
		return p
	}
	return Lazy(func() *Pair[T, U] { return p })
}

// Eager forces both elements and returns them as a new eager pair.
func (p *Pair[T, U]) Eager() *Pair[T, U] {
	c := p.resolve()
	return Of(c.first(), c.second())
}
