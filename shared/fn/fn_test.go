package fn_test

import (
	"strconv"
	"testing"

	"github.com/lazyeval-go/lazyeval/shared/fn"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	assert.Equal(t, 42, fn.Identity(42))
	assert.Equal(t, "foo", fn.Identity("foo"))
}

func TestConstant(t *testing.T) {
	get := fn.Constant("foo")

	assert.Equal(t, "foo", get())
	assert.Equal(t, "foo", get())
}

func TestCompose(t *testing.T) {
	length := func(s string) int { return len(s) }
	itoa := strconv.Itoa

	composed := fn.Compose(length, itoa)
	assert.Equal(t, 3, composed(100))
}

func TestFlip(t *testing.T) {
	concat := func(a, b string) string { return a + b }

	assert.Equal(t, "hamburger", fn.Flip(concat)("burger", "ham"))
}

func TestCurry(t *testing.T) {
	add := func(a, b int) int { return a + b }
	addFive := fn.Curry(add)(5)

	assert.Equal(t, 8, addFive(3))
}
