package thunk

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// memoTable is a bounded two-generation memo store. When the live
// generation fills up the generations rotate and the stale one is dropped
// wholesale, so the table never grows without bound while recent keys stay
// warm.
type memoTable[V any] struct {
	gens    [2]atomic.Pointer[sync.Map]
	liveIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

func newMemoTable[V any](maxSize uint32) *memoTable[V] {
	if maxSize == 0 {
		panic("thunk: memo table size must be positive")
	}
	t := &memoTable[V]{maxSize: maxSize}
	t.gens[0].Store(&sync.Map{})
	t.gens[1].Store(&sync.Map{})
	return t
}

func (t *memoTable[V]) load(key any) (V, bool) {
	live := t.liveIdx.Load()
	if v, ok := t.gens[live].Load().Load(key); ok {
		return v.(V), true
	}
	if v, ok := t.gens[1-live].Load().Load(key); ok {
		return v.(V), true
	}
	var zero V
	return zero, false
}

func (t *memoTable[V]) store(key any, value V) {
	if t.size.CompareAndSwap(t.maxSize, 0) {
		stale := 1 - t.liveIdx.Load()
		t.gens[stale].Store(&sync.Map{})
		t.liveIdx.Store(stale)
	}
	t.gens[t.liveIdx.Load()].Load().Store(key, value)
	t.size.Add(1)
}

// tableKey normalizes an argument into a map key: fmt.Stringer values key
// by their rendering, everything else keys by itself and must be
// comparable.
func tableKey(arg any) any {
	if s, ok := arg.(fmt.Stringer); ok {
		return s.String()
	}
	return arg
}

// Table1 memoizes a pure unary function by argument. The cache holds at
// most maxSize entries per generation.
func Table1[A, V any](fn func(A) V, maxSize uint32) func(A) V {
	table := newMemoTable[V](maxSize)
	return func(a A) V {
		k := tableKey(a)
		if v, ok := table.load(k); ok {
			return v
		}
		v := fn(a)
		table.store(k, v)
		return v
	}
}

// Table2 memoizes a pure binary function by its argument pair.
func Table2[A, B, V any](fn func(A, B) V, maxSize uint32) func(A, B) V {
	table := newMemoTable[V](maxSize)
	return func(a A, b B) V {
		k := [2]any{tableKey(a), tableKey(b)}
		if v, ok := table.load(k); ok {
			return v
		}
		v := fn(a, b)
		table.store(k, v)
		return v
	}
}
