// Package fn provides the small combinators the rest of the library leans
// on: identity, constant accessors, composition, and argument flipping.
package fn

// Identity returns its argument unchanged.
func Identity[T any](value T) T {
	return value
}

// Constant returns an accessor that always yields value.
func Constant[T any](value T) func() T {
	return func() T {
		return value
	}
}

// Compose applies g first, then f.
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Flip swaps the arguments of a binary function.
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return f(a, b)
	}
}

// Curry converts a binary function into its curried form.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}
