package ranges

import (
	"fmt"
	"iter"
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Range is a directional interval over T walked with a step of type S.
//
// S is T for the numeric ranges and int for CharacterRange.
type Range[T comparable, S any] interface {
	// Left returns the endpoint iteration starts from.
	Left() Endpoint[T]
	// Right returns the endpoint iteration stops at.
	Right() Endpoint[T]
	// Step returns the increment between successive values.
	Step() S
	// IsEmpty returns true if the range yields no values.
	IsEmpty() bool
	// Contains returns true if v is one of the values the range yields.
	Contains(v T) bool
	// ContainsAll returns true if values is non-empty and every value is contained.
	ContainsAll(values []T) bool
	// First returns the first value the range yields, if any.
	First() mo.Option[T]
	// All returns the values of the range. Each call starts from the left endpoint.
	All() iter.Seq[T]
	// Iterator returns a single-pass cursor over the values of the range.
	Iterator() Iterator[T]
	// Equal returns true if other has the same type, endpoints and step.
	Equal(other Range[T, S]) bool

	fmt.Stringer
}

// Iterator is a single-pass cursor over a Range.
//
// A consumed Iterator cannot be restarted; ask the Range for a new one.
type Iterator[T any] interface {
	// Next returns the next value, or false once the range is exhausted.
	Next() (T, bool)
	// Remove always returns ErrUnsupportedOperation.
	Remove() error
}

// Collect returns the values of r as a slice.
func Collect[T comparable, S any](r Range[T, S]) []T {
	return slices.Collect(r.All())
}

// Len returns the number of values r yields.
//
// This walks the whole range.
func Len[T comparable, S any](r Range[T, S]) int {
	n := 0
	for range r.All() {
		n++
	}
	return n
}

func containsAll[T any](values []T, contains func(T) bool) bool {
	return len(values) > 0 && lo.EveryBy(values, contains)
}
