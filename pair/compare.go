package pair

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Equal reports structural equality: both pairs are forced and their
// corresponding elements compared. Equality is a property of the
// represented values, not of the representation, so forcing is unavoidable
// here.
func (p *Pair[T, U]) Equal(o *Pair[T, U]) bool {
	if p == o {
		return true
	}
	if o == nil {
		return false
	}
	pc, oc := p.resolve(), o.resolve()
	return reflect.DeepEqual(pc.first(), oc.first()) &&
		reflect.DeepEqual(pc.second(), oc.second())
}

// HashValues combines two forced elements into an order-sensitive digest.
// Exported so a sum type encoded as a degenerate product hashes exactly as
// the corresponding pair does.
func HashValues(first, second any) uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "(%v", first)
	fmt.Fprintf(d, ", %v)", second)
	return d.Sum64()
}

// Hash forces both elements and combines them order-sensitively.
func (p *Pair[T, U]) Hash() uint64 {
	c := p.resolve()
	return HashValues(c.first(), c.second())
}

// String forces both elements and renders them parenthesized.
func (p *Pair[T, U]) String() string {
	c := p.resolve()
	return fmt.Sprintf("(%v, %v)", c.first(), c.second())
}

// ByFirst orders pairs by the natural order of their first elements.
func ByFirst[T cmp.Ordered, U any]() func(a, b *Pair[T, U]) int {
	return func(a, b *Pair[T, U]) int {
		return cmp.Compare(a.First(), b.First())
	}
}

// ByFirstFunc orders pairs by the given order on their first elements.
func ByFirstFunc[T, U any](compare func(T, T) int) func(a, b *Pair[T, U]) int {
	return func(a, b *Pair[T, U]) int {
		return compare(a.First(), b.First())
	}
}

// BySecond orders pairs by the natural order of their second elements.
func BySecond[T any, U cmp.Ordered]() func(a, b *Pair[T, U]) int {
	return func(a, b *Pair[T, U]) int {
		return cmp.Compare(a.Second(), b.Second())
	}
}

// BySecondFunc orders pairs by the given order on their second elements.
func BySecondFunc[T, U any](compare func(U, U) int) func(a, b *Pair[T, U]) int {
	return func(a, b *Pair[T, U]) int {
		return compare(a.Second(), b.Second())
	}
}
