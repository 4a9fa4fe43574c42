package purefunctor

import "go.uber.org/atomic"

// ============================================================================
// Stateful Predicates
// ============================================================================

// Limit returns a predicate that is true for its first n tests and false
// afterwards, whatever the argument.
//
// The returned predicate owns its invocation count, which is safe for
// concurrent use. Create a new one to start counting again.
//
// Example:
//
//	firstThree := Limit[string](3)
//	lines.Filter(firstThree)
func Limit[A any](n uint64) UnaryPredicate[A] {
	count := atomic.NewUint64(0)
	return func(A) bool {
		return count.Inc() <= n
	}
}

// Offset returns a predicate that is false for its first n tests and true
// afterwards, whatever the argument.
func Offset[A any](n uint64) UnaryPredicate[A] {
	count := atomic.NewUint64(0)
	return func(A) bool {
		if count.Load() > n {
			return true
		}
		return count.Inc() > n
	}
}
