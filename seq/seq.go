// Package seq provides a minimal lazily evaluated cons sequence, enough to
// express infinite generators and stack-safe positional access over them.
package seq

import (
	"github.com/lazyeval-go/lazyeval/thunk"
	"github.com/lazyeval-go/lazyeval/trampoline"
)

// node is one evaluated cons cell.
type node[T any] struct {
	head thunk.Func[T]
	tail *Seq[T]
}

// Seq is a lazily evaluated cons sequence. The empty sequence evaluates to
// no cell at all.
type Seq[T any] struct {
	eval thunk.Func[*node[T]]
}

// Empty is the sequence with no elements.
func Empty[T any]() *Seq[T] {
	return &Seq[T]{eval: func() *node[T] { return nil }}
}

// Cons prepends a deferred head onto a deferred tail. Both the cell and the
// head are computed at most once.
func Cons[T any](head thunk.Func[T], tail func() *Seq[T]) *Seq[T] {
	return &Seq[T]{eval: thunk.Memoize(func() *node[T] {
		return &node[T]{head: thunk.Memoize(head), tail: tail()}
	})}
}

// ConsValue prepends an eager head onto a deferred tail.
func ConsValue[T any](head T, tail func() *Seq[T]) *Seq[T] {
	return &Seq[T]{eval: thunk.Memoize(func() *node[T] {
		return &node[T]{head: func() T { return head }, tail: tail()}
	})}
}

// Ints is the infinite increasing sequence of integers starting at from.
func Ints(from int) *Seq[int] {
	return ConsValue(from, func() *Seq[int] { return Ints(from + 1) })
}

// IsEmpty reports whether the sequence has no elements. It forces the first
// cell.
func (s *Seq[T]) IsEmpty() bool {
	return s.eval() == nil
}

// Head returns the first element if the sequence is non-empty.
func (s *Seq[T]) Head() (T, bool) {
	n := s.eval()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.head(), true
}

// Tail returns the sequence without its first element. The tail of the
// empty sequence is the empty sequence.
func (s *Seq[T]) Tail() *Seq[T] {
	n := s.eval()
	if n == nil {
		return s
	}
	return n.tail
}

// Match simulates pattern matching: onCons receives an at-most-once head
// accessor and the tail; onEmpty handles the empty sequence.
func Match[T, R any](s *Seq[T], onCons func(thunk.Func[T], *Seq[T]) R, onEmpty func() R) R {
	n := s.eval()
	if n == nil {
		return onEmpty()
	}
	return onCons(n.head, n.tail)
}

// found carries the result of a positional lookup.
type found[T any] struct {
	value T
	ok    bool
}

// Index returns the element at the zero-based position n. The walk is
// trampolined, so n may exceed any native stack depth.
func Index[T any](s *Seq[T], n int) (T, bool) {
	res := trampoline.Evaluate2(s, n, func(s *Seq[T], n int) trampoline.Bounce2[*Seq[T], int, found[T]] {
		cur := s.eval()
		if cur == nil || n < 0 {
			return trampoline.Terminate2[*Seq[T], int](found[T]{})
		}
		if n == 0 {
			return trampoline.Terminate2[*Seq[T], int](found[T]{value: cur.head(), ok: true})
		}
		return trampoline.Call2[*Seq[T], int, found[T]](cur.tail, n-1)
	})
	return res.value, res.ok
}

// Take returns the first n elements, fewer if the sequence runs out.
func (s *Seq[T]) Take(n int) []T {
	out := make([]T, 0, n)
	cur := s
	for i := 0; i < n; i++ {
		cell := cur.eval()
		if cell == nil {
			break
		}
		out = append(out, cell.head())
		cur = cell.tail
	}
	return out
}
