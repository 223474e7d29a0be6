// Package pair provides a lazily evaluated, persistent, ordered,
// heterogeneous 2-tuple.
//
// Whereas a sum type holds exactly one of two alternatives, a Pair holds
// both: the product of two types. Each slot is independently eager or
// deferred, and a whole pair may itself be lazily redefined in terms of
// another pair.
//
// # Laziness
//
// Nothing is forced until demanded. Match forces both slots and hands the
// values to a binary function; MatchLazy hands out at-most-once accessors
// and lets the caller decide whether and in what order to force. Derived
// operations (MapBoth, Swap, Duplicate, ...) are all defined through Lazy,
// so they defer work and inherit the flattening guarantees below.
//
// # Redefinition and flattening
//
// Lazy builds a pair whose entire identity is deferred: forcing it yields
// another pair, possibly itself further redefined. Resolution walks such a
// chain iteratively to its terminal, non-redefining pair — the principal —
// re-wraps the principal's slots in fresh memoized accessors, and publishes
// the result into every proxy it walked with a single compare-and-swap.
// Repeated resolution is O(1) and each leaf computation runs at most
// logically once, no matter how long the chain was.
//
// Chains must be finite and acyclic by construction: a supply function must
// never, transitively, yield the pair it defines.
package pair
