package purefunctor

// ============================================================================
// Conditionals
// ============================================================================

// ConditionalPredicate tests ifTrue when condition holds and ifFalse otherwise.
func ConditionalPredicate[A any](condition, ifTrue, ifFalse UnaryPredicate[A]) UnaryPredicate[A] {
	return func(a A) bool {
		if condition(a) {
			return ifTrue(a)
		}
		return ifFalse(a)
	}
}

// ConditionalFunction evaluates ifTrue when condition holds and ifFalse otherwise.
//
// Example:
//
//	abs := ConditionalFunction(LessThan(0), negate, Identity[int]())
func ConditionalFunction[A, T any](condition UnaryPredicate[A], ifTrue, ifFalse UnaryFunction[A, T]) UnaryFunction[A, T] {
	return func(a A) T {
		if condition(a) {
			return ifTrue(a)
		}
		return ifFalse(a)
	}
}

// ConditionalProcedure runs ifTrue when condition holds and ifFalse otherwise.
func ConditionalProcedure[A any](condition UnaryPredicate[A], ifTrue, ifFalse UnaryProcedure[A]) UnaryProcedure[A] {
	return func(a A) {
		if condition(a) {
			ifTrue(a)
			return
		}
		ifFalse(a)
	}
}
