package purefunctor

import (
	"iter"
	"slices"

	"github.com/Pure-Company/purefunctor/ranges"
)

// ============================================================================
// Generators
// ============================================================================

// Generator is a restartable sequence of values built from functors.
//
// Every method returns a new Generator; nothing runs until the generator is
// ranged over or Run.
//
// Example:
//
//	evens := FromRange[int32, int32](ranges.IntegerRangeOf(0, 100)).
//	    Filter(func(n int32) bool { return n%2 == 0 }).
//	    Take(5)
//	evens.ToSlice() // [0 2 4 6 8]
type Generator[T any] iter.Seq[T]

// Generate wraps seq.
func Generate[T any](seq iter.Seq[T]) Generator[T] {
	return Generator[T](seq)
}

// Of returns a generator over values.
func Of[T any](values ...T) Generator[T] {
	return Generator[T](slices.Values(values))
}

// FromRange returns a generator over the values of r.
func FromRange[T comparable, S any](r ranges.Range[T, S]) Generator[T] {
	return Generator[T](r.All())
}

// InRange returns a predicate that tests membership in r.
func InRange[T comparable, S any](r ranges.Range[T, S]) UnaryPredicate[T] {
	return r.Contains
}

// Seq returns g as an iter.Seq.
func (g Generator[T]) Seq() iter.Seq[T] {
	return iter.Seq[T](g)
}

// Empty returns a generator that yields nothing (Monoid identity).
func (g Generator[T]) Empty() Generator[T] {
	return func(func(T) bool) {}
}

// Compose yields the values of g, then those of next (Monoid operation).
func (g Generator[T]) Compose(next Generator[T]) Generator[T] {
	return func(yield func(T) bool) {
		for v := range g {
			if !yield(v) {
				return
			}
		}
		for v := range next {
			if !yield(v) {
				return
			}
		}
	}
}

// Filter keeps only values matching the predicate.
func (g Generator[T]) Filter(predicate UnaryPredicate[T]) Generator[T] {
	return func(yield func(T) bool) {
		for v := range g {
			if predicate(v) && !yield(v) {
				return
			}
		}
	}
}

// Map transforms every value.
func (g Generator[T]) Map(transform UnaryFunction[T, T]) Generator[T] {
	return Transform(g, transform)
}

// While yields values as long as the predicate holds.
func (g Generator[T]) While(predicate UnaryPredicate[T]) Generator[T] {
	return func(yield func(T) bool) {
		for v := range g {
			if !predicate(v) || !yield(v) {
				return
			}
		}
	}
}

// Until yields values up to, but not including, the first one matching the predicate.
func (g Generator[T]) Until(predicate UnaryPredicate[T]) Generator[T] {
	return g.While(predicate.Not())
}

// Take yields at most the first n values.
//
// It stops pulling from g as soon as the n-th value is yielded.
func (g Generator[T]) Take(n uint64) Generator[T] {
	return func(yield func(T) bool) {
		if n == 0 {
			return
		}
		var taken uint64
		for v := range g {
			taken++
			if !yield(v) || taken == n {
				return
			}
		}
	}
}

// Skip drops the first n values.
func (g Generator[T]) Skip(n uint64) Generator[T] {
	return func(yield func(T) bool) {
		g.Filter(Offset[T](n))(yield)
	}
}

// Tap calls fn with every value as it is yielded.
func (g Generator[T]) Tap(fn UnaryProcedure[T]) Generator[T] {
	return func(yield func(T) bool) {
		for v := range g {
			fn(v)
			if !yield(v) {
				return
			}
		}
	}
}

// Run calls procedure with every value.
func (g Generator[T]) Run(procedure UnaryProcedure[T]) {
	for v := range g {
		procedure(v)
	}
}

// ToSlice collects the values into a slice.
func (g Generator[T]) ToSlice() []T {
	return slices.Collect(g.Seq())
}

// Transform returns a generator applying f to every value of g.
func Transform[T, U any](g Generator[T], f UnaryFunction[T, U]) Generator[U] {
	return func(yield func(U) bool) {
		for v := range g {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Reduce folds the values of g into a single value.
func Reduce[T, U any](g Generator[T], f BinaryFunction[U, T, U], initial U) U {
	acc := initial
	for v := range g {
		acc = f(acc, v)
	}
	return acc
}
