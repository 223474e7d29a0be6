package helper

import (
	"fmt"
)

// TypedValueOf safely asserts the result of a getter function to the
// expected type T. Returns an error if the type assertion fails.
func TypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// TypedValueOk is the ok-reporting variant of TypedValueOf.
func TypedValueOk[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// MustTypedValue is the panic-on-failure variant of TypedValueOf.
// Use when failure is a programmer error.
func MustTypedValue[T any](getFn func() (any, error)) T {
	res, err := TypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}
