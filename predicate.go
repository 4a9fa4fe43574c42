package purefunctor

import (
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// ============================================================================
// Predicates
// ============================================================================

// Predicate is a functor that takes no arguments and returns a boolean.
//
// Example:
//
//	ready := Predicate(func() bool { return queue.Len() > 0 })
//	ready = ready.And(Predicate(isConnected))
type Predicate func() bool

// Test evaluates the predicate.
func (p Predicate) Test() bool {
	return p()
}

// Empty returns a predicate that is always true (Monoid identity for And).
func (p Predicate) Empty() Predicate {
	return func() bool { return true }
}

// Compose returns a predicate that is true when both predicates are (Monoid operation).
func (p Predicate) Compose(other Predicate) Predicate {
	return p.And(other)
}

// And returns a predicate that is true when p and all others are true.
// Evaluation stops at the first false predicate.
func (p Predicate) And(others ...Predicate) Predicate {
	return func() bool {
		return p() && lo.EveryBy(others, func(o Predicate) bool { return o() })
	}
}

// Or returns a predicate that is true when p or any of others is true.
// Evaluation stops at the first true predicate.
func (p Predicate) Or(others ...Predicate) Predicate {
	return func() bool {
		return p() || lo.SomeBy(others, func(o Predicate) bool { return o() })
	}
}

// Not negates the predicate.
func (p Predicate) Not() Predicate {
	return func() bool { return !p() }
}

// UnaryPredicate is a functor that takes one argument and returns a boolean.
//
// Example:
//
//	even := UnaryPredicate[int](func(n int) bool { return n%2 == 0 })
//	smallEven := even.And(LessThan(10))
type UnaryPredicate[A any] func(a A) bool

// Test evaluates the predicate.
func (p UnaryPredicate[A]) Test(a A) bool {
	return p(a)
}

// Empty returns a predicate that is always true (Monoid identity for And).
func (p UnaryPredicate[A]) Empty() UnaryPredicate[A] {
	return True[A]()
}

// Compose returns a predicate that is true when both predicates are (Monoid operation).
func (p UnaryPredicate[A]) Compose(other UnaryPredicate[A]) UnaryPredicate[A] {
	return p.And(other)
}

// And returns a predicate that is true when p and all others are true.
func (p UnaryPredicate[A]) And(others ...UnaryPredicate[A]) UnaryPredicate[A] {
	return And(append([]UnaryPredicate[A]{p}, others...)...)
}

// Or returns a predicate that is true when p or any of others is true.
func (p UnaryPredicate[A]) Or(others ...UnaryPredicate[A]) UnaryPredicate[A] {
	return Or(append([]UnaryPredicate[A]{p}, others...)...)
}

// Not negates the predicate.
func (p UnaryPredicate[A]) Not() UnaryPredicate[A] {
	return Not(p)
}

// Xor returns a predicate that is true when exactly one of p and other is true.
func (p UnaryPredicate[A]) Xor(other UnaryPredicate[A]) UnaryPredicate[A] {
	return func(a A) bool {
		return p(a) != other(a)
	}
}

// Bind fixes the argument, producing a Predicate.
func (p UnaryPredicate[A]) Bind(a A) Predicate {
	return func() bool { return p(a) }
}

// WithLogging logs every evaluation at debug level.
func (p UnaryPredicate[A]) WithLogging(logger *zap.Logger, name string) UnaryPredicate[A] {
	return func(a A) bool {
		result := p(a)
		logger.Debug(
			"tested predicate",
			zap.String("predicate", name),
			zap.Any("argument", a),
			zap.Bool("result", result),
		)
		return result
	}
}

// BinaryPredicate is a functor that takes two arguments and returns a boolean.
type BinaryPredicate[L, R any] func(left L, right R) bool

// Test evaluates the predicate.
func (p BinaryPredicate[L, R]) Test(left L, right R) bool {
	return p(left, right)
}

// And returns a predicate that is true when p and all others are true.
func (p BinaryPredicate[L, R]) And(others ...BinaryPredicate[L, R]) BinaryPredicate[L, R] {
	return func(left L, right R) bool {
		return p(left, right) && lo.EveryBy(others, func(o BinaryPredicate[L, R]) bool { return o(left, right) })
	}
}

// Or returns a predicate that is true when p or any of others is true.
func (p BinaryPredicate[L, R]) Or(others ...BinaryPredicate[L, R]) BinaryPredicate[L, R] {
	return func(left L, right R) bool {
		return p(left, right) || lo.SomeBy(others, func(o BinaryPredicate[L, R]) bool { return o(left, right) })
	}
}

// Not negates the predicate.
func (p BinaryPredicate[L, R]) Not() BinaryPredicate[L, R] {
	return func(left L, right R) bool { return !p(left, right) }
}

// BindFirst fixes the left argument.
func (p BinaryPredicate[L, R]) BindFirst(left L) UnaryPredicate[R] {
	return func(right R) bool { return p(left, right) }
}

// BindSecond fixes the right argument.
func (p BinaryPredicate[L, R]) BindSecond(right R) UnaryPredicate[L] {
	return func(left L) bool { return p(left, right) }
}

// Transpose swaps the arguments.
func (p BinaryPredicate[L, R]) Transpose() BinaryPredicate[R, L] {
	return func(right R, left L) bool { return p(left, right) }
}

// ============================================================================
// Composite Predicates
// ============================================================================

// And returns a predicate that is true when every predicate is true.
// An empty And is always true.
func And[A any](predicates ...UnaryPredicate[A]) UnaryPredicate[A] {
	return func(a A) bool {
		return lo.EveryBy(predicates, func(p UnaryPredicate[A]) bool { return p(a) })
	}
}

// Or returns a predicate that is true when any predicate is true.
// An empty Or is always false.
func Or[A any](predicates ...UnaryPredicate[A]) UnaryPredicate[A] {
	return func(a A) bool {
		return lo.SomeBy(predicates, func(p UnaryPredicate[A]) bool { return p(a) })
	}
}

// Not negates a predicate.
func Not[A any](p UnaryPredicate[A]) UnaryPredicate[A] {
	return func(a A) bool { return !p(a) }
}

// ============================================================================
// Core Predicates
// ============================================================================

// True returns a predicate that is always true.
func True[A any]() UnaryPredicate[A] {
	return func(A) bool { return true }
}

// False returns a predicate that is always false.
func False[A any]() UnaryPredicate[A] {
	return func(A) bool { return false }
}

// IsEqual returns a predicate that is true for arguments equal to v.
func IsEqual[A comparable](v A) UnaryPredicate[A] {
	return func(a A) bool { return a == v }
}

// IsNotEqual returns a predicate that is true for arguments different from v.
func IsNotEqual[A comparable](v A) UnaryPredicate[A] {
	return func(a A) bool { return a != v }
}

// IsZero returns a predicate that is true for the zero value of A.
func IsZero[A comparable]() UnaryPredicate[A] {
	var zero A
	return IsEqual(zero)
}

// LessThan returns a predicate that is true for arguments below v.
func LessThan[A constraints.Ordered](v A) UnaryPredicate[A] {
	return func(a A) bool { return a < v }
}

// GreaterThan returns a predicate that is true for arguments above v.
func GreaterThan[A constraints.Ordered](v A) UnaryPredicate[A] {
	return func(a A) bool { return a > v }
}

// Equal returns a binary predicate comparing its arguments with ==.
func Equal[A comparable]() BinaryPredicate[A, A] {
	return func(left, right A) bool { return left == right }
}

// Less returns a binary predicate that is true when left < right.
func Less[A constraints.Ordered]() BinaryPredicate[A, A] {
	return func(left, right A) bool { return left < right }
}
