package purefunctor

// ============================================================================
// Adapters
// ============================================================================

// FunctionPredicate adapts a boolean-valued function to a UnaryPredicate.
func FunctionPredicate[A any](f UnaryFunction[A, bool]) UnaryPredicate[A] {
	return UnaryPredicate[A](f)
}

// PredicateFunction adapts a UnaryPredicate to a boolean-valued function.
func PredicateFunction[A any](p UnaryPredicate[A]) UnaryFunction[A, bool] {
	return UnaryFunction[A, bool](p)
}

// ProcedureFunction adapts a UnaryProcedure to a function returning the zero value of T.
func ProcedureFunction[A, T any](p UnaryProcedure[A]) UnaryFunction[A, T] {
	return func(a A) T {
		p(a)
		var zero T
		return zero
	}
}

// FunctionProcedure adapts a UnaryFunction to a procedure, discarding its result.
func FunctionProcedure[A, T any](f UnaryFunction[A, T]) UnaryProcedure[A] {
	return func(a A) { f(a) }
}

// Ignore adapts a Function to a UnaryFunction that ignores its argument.
func Ignore[A, T any](f Function[T]) UnaryFunction[A, T] {
	return func(A) T { return f() }
}

// IgnorePredicate adapts a Predicate to a UnaryPredicate that ignores its argument.
func IgnorePredicate[A any](p Predicate) UnaryPredicate[A] {
	return func(A) bool { return p() }
}

// IgnoreLeft adapts a UnaryFunction to a BinaryFunction that ignores its left argument.
func IgnoreLeft[L, R, T any](f UnaryFunction[R, T]) BinaryFunction[L, R, T] {
	return func(_ L, right R) T { return f(right) }
}

// IgnoreRight adapts a UnaryFunction to a BinaryFunction that ignores its right argument.
func IgnoreRight[L, R, T any](f UnaryFunction[L, T]) BinaryFunction[L, R, T] {
	return func(left L, _ R) T { return f(left) }
}

// IgnoreLeftPredicate adapts a UnaryPredicate to a BinaryPredicate that ignores its left argument.
func IgnoreLeftPredicate[L, R any](p UnaryPredicate[R]) BinaryPredicate[L, R] {
	return func(_ L, right R) bool { return p(right) }
}

// IgnoreRightPredicate adapts a UnaryPredicate to a BinaryPredicate that ignores its right argument.
func IgnoreRightPredicate[L, R any](p UnaryPredicate[L]) BinaryPredicate[L, R] {
	return func(left L, _ R) bool { return p(left) }
}
