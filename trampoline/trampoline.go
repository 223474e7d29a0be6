// Package trampoline converts unbounded recursive call chains into a
// bounded-stack iterative loop. A recursive function is expressed as a step
// that either continues with the next state or terminates with the result;
// Evaluate drives the step to completion without growing the native call
// stack.
package trampoline

import (
	"github.com/lazyeval-go/lazyeval/shared/evlog"
)

// Bounce is the outcome of one step of a trampolined computation: either
// the next state to continue with or the final result. Bounces are
// transient; they live only inside the evaluation loop.
type Bounce[S, R any] struct {
	next   S
	result R
	done   bool
}

// Call continues the computation with the next state.
func Call[S, R any](next S) Bounce[S, R] {
	return Bounce[S, R]{next: next}
}

// Terminate finishes the computation with the final result.
func Terminate[S, R any](result R) Bounce[S, R] {
	return Bounce[S, R]{result: result, done: true}
}

// Evaluate drives step from seed to completion as an explicit loop.
// Recursion depth in the problem domain costs O(1) native stack frames and
// one Bounce per iteration. Evaluate does not bound the iteration count;
// a step that never terminates loops forever.
//
// For any recursive function expressed both directly and as a step,
// Evaluate produces the same value as the direct form wherever the direct
// form terminates, and keeps producing it past the depth where the direct
// form would exhaust the stack.
func Evaluate[S, R any](seed S, step func(S) Bounce[S, R]) R {
	if evlog.Enabled() {
		return evaluateTraced(seed, step)
	}
	for {
		b := step(seed)
		if b.done {
			return b.result
		}
		seed = b.next
	}
}

func evaluateTraced[S, R any](seed S, step func(S) Bounce[S, R]) R {
	var n uint64
	for {
		b := step(seed)
		n++
		if b.done {
			evlog.Iterations("trampoline", n)
			return b.result
		}
		seed = b.next
	}
}

// state2 packages the two arguments of a binary recursive function into a
// single state record. Building the record does not force any lazy value
// carried inside it; only the step at the head of the next iteration
// evaluates.
type state2[A, B any] struct {
	a A
	b B
}

// Bounce2 is the Bounce of a binary recursive function.
type Bounce2[A, B, R any] = Bounce[state2[A, B], R]

// Call2 continues a binary recursive function with its next two arguments.
func Call2[A, B, R any](a A, b B) Bounce2[A, B, R] {
	return Call[state2[A, B], R](state2[A, B]{a: a, b: b})
}

// Terminate2 finishes a binary recursive function with the final result.
func Terminate2[A, B, R any](result R) Bounce2[A, B, R] {
	return Terminate[state2[A, B], R](result)
}

// Evaluate2 is Evaluate for binary recursive functions: the two seeds are
// carried as one state record passed whole into each step.
func Evaluate2[A, B, R any](a A, b B, step func(A, B) Bounce2[A, B, R]) R {
	return Evaluate(state2[A, B]{a: a, b: b}, func(s state2[A, B]) Bounce2[A, B, R] {
		return step(s.a, s.b)
	})
}
