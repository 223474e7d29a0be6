package pair_test

import (
	"testing"

	"github.com/lazyeval-go/lazyeval/pair"
	"github.com/lazyeval-go/lazyeval/thunk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfMatch(t *testing.T) {
	p := pair.Of(1, "one")

	sum := pair.Match(p, func(first int, second string) string {
		return second
	})
	assert.Equal(t, "one", sum)
	assert.Equal(t, 1, p.First())
	assert.Equal(t, "one", p.Second())
}

func TestMatchLazyForcesNothing(t *testing.T) {
	firstRuns, secondRuns := 0, 0
	p := pair.OfLazy(
		func() int { firstRuns++; return 1 },
		func() int { secondRuns++; return 2 },
	)

	got := pair.MatchLazy(p, func(first, second thunk.Func[int]) int {
		return 0
	})

	assert.Equal(t, 0, got)
	assert.Equal(t, 0, firstRuns)
	assert.Equal(t, 0, secondRuns)
}

func TestMatchLazyCallerForcesInOrder(t *testing.T) {
	var order []string
	p := pair.OfLazy(
		func() int { order = append(order, "first"); return 1 },
		func() int { order = append(order, "second"); return 2 },
	)

	sum := pair.MatchLazy(p, func(first, second thunk.Func[int]) int {
		b := second()
		a := first()
		return a + b
	})

	assert.Equal(t, 3, sum)
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestMatchLazyAccessorsAtMostOnce(t *testing.T) {
	runs := 0
	p := pair.OfLazySecond("k", func() int { runs++; return 9 })

	total := pair.MatchLazy(p, func(first thunk.Func[string], second thunk.Func[int]) int {
		return second() + second() + second()
	})

	assert.Equal(t, 27, total)
	assert.Equal(t, 1, runs)
}

func TestSwapRoundtrip(t *testing.T) {
	p := pair.Of(1, "one")

	assert.True(t, p.Swap().Swap().Equal(p))
	assert.Equal(t, "one", p.Swap().First())
	assert.Equal(t, 1, p.Swap().Second())
}

func TestLazyEagerEquivalence(t *testing.T) {
	eager := pair.Of(1, 2)
	lazy := pair.Lazy(func() *pair.Pair[int, int] { return pair.Of(1, 2) })

	assert.True(t, eager.Equal(lazy))
	assert.True(t, lazy.Equal(eager))
	assert.Equal(t, eager.Hash(), lazy.Hash())
	assert.Equal(t, eager.String(), lazy.String())
}

func TestFlatteningEvaluatesLeavesOnce(t *testing.T) {
	const k = 10_000
	firstRuns, secondRuns := 0, 0
	p := pair.OfLazy(
		func() int { firstRuns++; return 11 },
		func() int { secondRuns++; return 22 },
	)
	for i := 0; i < k; i++ {
		q := p
		p = pair.Lazy(func() *pair.Pair[int, int] { return q })
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, 11, p.First())
		assert.Equal(t, 22, p.Second())
	}
	assert.Equal(t, 1, firstRuns)
	assert.Equal(t, 1, secondRuns)
}

func TestMemoizeCachesSlots(t *testing.T) {
	runs := 0
	p := pair.OfLazy(
		func() int { runs++; return 1 },
		func() int { runs++; return 2 },
	)
	m := p.Memoize()

	for i := 0; i < 3; i++ {
		assert.Equal(t, 1, m.First())
		assert.Equal(t, 2, m.Second())
	}
	assert.Equal(t, 2, runs)
}

func TestMemoizeEagerIsNoOp(t *testing.T) {
	p := pair.Of(1, 2)
	assert.Same(t, p, p.Memoize())
}

func TestMemoizeIdempotent(t *testing.T) {
	p := pair.OfLazy(func() int { return 1 }, func() int { return 2 }).Memoize()
	assert.Same(t, p, p.Memoize())
}

func TestMapBoth(t *testing.T) {
	runs := 0
	p := pair.OfLazySecond(2, func() string { runs++; return "ab" })

	mapped := pair.MapBoth(p,
		func(i int) int { return i * 10 },
		func(s string) int { return len(s) },
	)

	assert.Equal(t, 0, runs) // mapping defers
	assert.Equal(t, 20, mapped.First())
	assert.Equal(t, 2, mapped.Second())
	assert.Equal(t, 1, runs)
}

func TestMapFirstSecond(t *testing.T) {
	p := pair.Of(3, "abc")

	assert.Equal(t, 30, pair.MapFirst(p, func(i int) int { return i * 10 }).First())
	assert.Equal(t, "abc", pair.MapFirst(p, func(i int) int { return i }).Second())
	assert.Equal(t, 3, pair.MapSecond(p, func(s string) int { return len(s) }).Second())
}

func TestMapSameTyped(t *testing.T) {
	p := pair.Duplicate(4)
	doubled := pair.Map(p, func(i int) int { return i * 2 })

	assert.Equal(t, 8, doubled.First())
	assert.Equal(t, 8, doubled.Second())
}

func TestForEachOrder(t *testing.T) {
	var seen []int
	pair.ForEach(pair.Of(1, 2), func(v int) { seen = append(seen, v) })

	assert.Equal(t, []int{1, 2}, seen)
}

func TestDuplicateLazyComputesOnce(t *testing.T) {
	runs := 0
	p := pair.DuplicateLazy(func() int { runs++; return 5 })

	assert.Equal(t, 5, p.First())
	assert.Equal(t, 5, p.Second())
	assert.Equal(t, 1, runs)
}

func TestEntryRoundtrip(t *testing.T) {
	e := pair.Entry[string, int]{Key: "k", Value: 1}
	p := pair.From(e)

	assert.Equal(t, e, p.Entry())
}

func TestEagerForcesBoth(t *testing.T) {
	runs := 0
	p := pair.OfLazy(
		func() int { runs++; return 1 },
		func() int { runs++; return 2 },
	)
	e := p.Eager()

	assert.Equal(t, 2, runs)
	assert.True(t, e.Equal(pair.Of(1, 2)))
	assert.Same(t, e, e.Memoize())
}

func TestCast(t *testing.T) {
	var erased any = pair.Of(1, "one")

	p, err := pair.Cast[int, string](erased)
	require.NoError(t, err)
	assert.Equal(t, 1, p.First())

	_, err = pair.Cast[string, string](erased)
	require.Error(t, err)
	assert.Panics(t, func() { pair.MustCast[string, string](erased) })
}

func TestOrdering(t *testing.T) {
	a := pair.Of(1, "b")
	b := pair.Of(2, "a")

	byFirst := pair.ByFirst[int, string]()
	assert.Negative(t, byFirst(a, b))
	assert.Positive(t, byFirst(b, a))
	assert.Zero(t, byFirst(a, a))

	bySecond := pair.BySecond[int, string]()
	assert.Positive(t, bySecond(a, b))

	reversed := pair.ByFirstFunc[int, string](func(x, y int) int { return y - x })
	assert.Positive(t, reversed(a, b))

	bySecondLen := pair.BySecondFunc[int](func(x, y string) int { return len(x) - len(y) })
	assert.Zero(t, bySecondLen(a, b))
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1, one)", pair.Of(1, "one").String())
}

func TestEqualNilAndMismatch(t *testing.T) {
	p := pair.Of(1, 2)

	assert.False(t, p.Equal(nil))
	assert.False(t, p.Equal(pair.Of(1, 3)))
	assert.False(t, p.Equal(pair.Of(2, 2)))
	assert.True(t, p.Equal(p))
}

func TestLazyNilSupplyPanics(t *testing.T) {
	assert.Panics(t, func() { pair.Lazy[int, int](nil) })
}
