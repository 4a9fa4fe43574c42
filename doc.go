/*
Package purefunctor provides functors as plain Go function types.

# Overview

Purefunctor models predicates, functions and procedures of zero, one and two
arguments as named function types. Each type is callable directly, and adds
methods for composition, adaptation and decoration. There are no wrapper
structs and no class hierarchy: an adapter is a function that returns a
function.

# Key Benefits

  - Zero boilerplate: any func literal with the right signature is a functor
  - Rich composition: And, Or, Not, Compose, Sequence, conditionals
  - Monoid operations: Empty() and Compose() on every type with an identity
  - Decorators: Map, Tap, WithLogging, Recover
  - Generators: lazy, restartable sequences built on iter.Seq

# Quick Example

	even := purefunctor.UnaryPredicate[int](func(n int) bool { return n%2 == 0 })
	small := purefunctor.LessThan(10)

	smallEven := even.And(small)
	smallEven(4)  // true
	smallEven(12) // false

# Core Concepts

Functors come in three shapes and three arities:

	Predicate       func() bool
	UnaryPredicate  func(A) bool
	BinaryPredicate func(L, R) bool

	Function        func() T
	UnaryFunction   func(A) T
	BinaryFunction  func(L, R) T

	Procedure       func()
	UnaryProcedure  func(A)
	BinaryProcedure func(L, R)

Adapters convert between them:

	PredicateFunction(p)       // UnaryPredicate -> UnaryFunction[A, bool]
	FunctionProcedure(f)       // UnaryFunction -> UnaryProcedure
	binary.BindFirst(left)     // BinaryFunction -> UnaryFunction
	IgnoreLeft[L](unary)       // UnaryFunction -> BinaryFunction

Monoids: every type with a lawful identity provides Empty() and Compose():

	p.Compose(q)     // predicates: logical and
	proc.Compose(q)  // procedures: run in sequence
	gen.Compose(h)   // generators: concatenation

# Stateful Predicates

Limit and Offset count their own invocations with an atomic counter:

	Of("a", "b", "c", "d").Filter(Limit[string](2)).ToSlice() // [a b]

# Ranges

The ranges subpackage provides stepped integer, float and character ranges.
A range plugs into generators and predicates:

	r := ranges.IntegerRangeOf(0, 10)
	FromRange[int32, int32](r).Filter(InRange[int32, int32](other))

# Package Import

	import pf "github.com/Pure-Company/purefunctor"

	// Or full import
	import "github.com/Pure-Company/purefunctor"
*/
package purefunctor
