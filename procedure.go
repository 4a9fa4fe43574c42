package purefunctor

// ============================================================================
// Procedures
// ============================================================================

// Procedure is a functor that takes no arguments and returns nothing.
//
// Example:
//
//	flush := Procedure(buffer.Flush)
//	flush = flush.Compose(Procedure(file.Sync))
type Procedure func()

// Run calls the procedure.
func (p Procedure) Run() {
	p()
}

// Empty returns a procedure that does nothing (Monoid identity).
func (p Procedure) Empty() Procedure {
	return NoOp
}

// Compose runs p, then each of others in order (Monoid operation).
func (p Procedure) Compose(others ...Procedure) Procedure {
	return Sequence(append([]Procedure{p}, others...)...)
}

// Before runs before, then p.
func (p Procedure) Before(before Procedure) Procedure {
	return Sequence(before, p)
}

// UnaryProcedure is a functor that takes one argument and returns nothing.
type UnaryProcedure[A any] func(a A)

// Run calls the procedure.
func (p UnaryProcedure[A]) Run(a A) {
	p(a)
}

// Empty returns a procedure that does nothing (Monoid identity).
func (p UnaryProcedure[A]) Empty() UnaryProcedure[A] {
	return func(A) {}
}

// Compose runs p, then each of others in order, with the same argument (Monoid operation).
func (p UnaryProcedure[A]) Compose(others ...UnaryProcedure[A]) UnaryProcedure[A] {
	return func(a A) {
		p(a)
		for _, o := range others {
			o(a)
		}
	}
}

// Before runs before, then p, with the same argument.
func (p UnaryProcedure[A]) Before(before UnaryProcedure[A]) UnaryProcedure[A] {
	return before.Compose(p)
}

// Bind fixes the argument, producing a Procedure.
func (p UnaryProcedure[A]) Bind(a A) Procedure {
	return func() { p(a) }
}

// BinaryProcedure is a functor that takes two arguments and returns nothing.
type BinaryProcedure[L, R any] func(left L, right R)

// Run calls the procedure.
func (p BinaryProcedure[L, R]) Run(left L, right R) {
	p(left, right)
}

// Empty returns a procedure that does nothing (Monoid identity).
func (p BinaryProcedure[L, R]) Empty() BinaryProcedure[L, R] {
	return func(L, R) {}
}

// Compose runs p, then each of others in order, with the same arguments (Monoid operation).
func (p BinaryProcedure[L, R]) Compose(others ...BinaryProcedure[L, R]) BinaryProcedure[L, R] {
	return func(left L, right R) {
		p(left, right)
		for _, o := range others {
			o(left, right)
		}
	}
}

// BindFirst fixes the left argument.
func (p BinaryProcedure[L, R]) BindFirst(left L) UnaryProcedure[R] {
	return func(right R) { p(left, right) }
}

// BindSecond fixes the right argument.
func (p BinaryProcedure[L, R]) BindSecond(right R) UnaryProcedure[L] {
	return func(left L) { p(left, right) }
}

// Transpose swaps the arguments.
func (p BinaryProcedure[L, R]) Transpose() BinaryProcedure[R, L] {
	return func(right R, left L) { p(left, right) }
}

// ============================================================================
// Composite Procedures
// ============================================================================

// NoOp does nothing.
func NoOp() {}

// Sequence returns a procedure that runs each procedure in order.
func Sequence(procedures ...Procedure) Procedure {
	return func() {
		for _, p := range procedures {
			p()
		}
	}
}

// WhileDo returns a procedure that runs body as long as condition holds,
// testing condition before each run.
func WhileDo(condition Predicate, body Procedure) Procedure {
	return func() {
		for condition() {
			body()
		}
	}
}

// DoWhile returns a procedure that runs body once, then again as long as
// condition holds.
func DoWhile(body Procedure, condition Predicate) Procedure {
	return func() {
		for {
			body()
			if !condition() {
				return
			}
		}
	}
}

// UntilDo returns a procedure that runs body until condition holds,
// testing condition before each run.
func UntilDo(condition Predicate, body Procedure) Procedure {
	return WhileDo(condition.Not(), body)
}

// DoUntil returns a procedure that runs body once, then again until
// condition holds.
func DoUntil(body Procedure, condition Predicate) Procedure {
	return DoWhile(body, condition.Not())
}
