package ranges

import (
	"fmt"
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/samber/mo"
	"golang.org/x/exp/constraints"
)

// Number is the set of types a numeric range steps over.
type Number interface {
	constraints.Signed | constraints.Float
}

// numericRange holds the state and algorithms shared by every range type.
//
// The concrete range types embed it and add containment and formatting.
type numericRange[T Number] struct {
	left  Endpoint[T]
	right Endpoint[T]
	step  T
}

func newNumericRange[T Number](left Endpoint[T], right Endpoint[T], step T) (numericRange[T], error) {
	if !left.boundType.Valid() {
		return numericRange[T]{}, errors.Wrap(ErrInvalidArgument, "left endpoint has no bound type")
	}
	if !right.boundType.Valid() {
		return numericRange[T]{}, errors.Wrap(ErrInvalidArgument, "right endpoint has no bound type")
	}
	if left.value != right.value {
		if dir := direction(left.value, right.value); dir == 0 || signum(step) != dir {
			return numericRange[T]{}, errors.Wrapf(
				ErrUnreachableRange,
				"will never reach %v from %v using step %v",
				right.value,
				left.value,
				step,
			)
		}
	}
	return numericRange[T]{left: left, right: right, step: step}, nil
}

// Left returns the endpoint iteration starts from.
func (r numericRange[T]) Left() Endpoint[T] {
	return r.left
}

// Right returns the endpoint iteration stops at.
func (r numericRange[T]) Right() Endpoint[T] {
	return r.right
}

// Step returns the increment between successive values.
func (r numericRange[T]) Step() T {
	return r.step
}

// IsEmpty returns true if the range yields no values.
func (r numericRange[T]) IsEmpty() bool {
	if !r.left.IsClosed() && !r.right.IsClosed() && r.left.value == r.right.value {
		return true
	}
	first, ok := r.first()
	if !ok {
		return true
	}
	if r.step > 0 {
		if r.right.IsClosed() {
			return first > r.right.value
		}
		return first >= r.right.value
	}
	if r.right.IsClosed() {
		return first < r.right.value
	}
	return first <= r.right.value
}

// First returns the first value the range yields, if any.
func (r numericRange[T]) First() mo.Option[T] {
	if r.IsEmpty() {
		return mo.None[T]()
	}
	first, _ := r.first()
	return mo.Some(first)
}

// All returns the values of the range. Each call starts from the left endpoint.
func (r numericRange[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := r.cursor()
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Iterator returns a single-pass cursor over the values of the range.
func (r numericRange[T]) Iterator() Iterator[T] {
	return r.cursor()
}

// first returns the left value, or the value one step past it when the left
// endpoint is open. It returns false if that step overflows or does not move.
func (r numericRange[T]) first() (T, bool) {
	if r.left.IsClosed() || r.step == 0 {
		return r.left.value, true
	}
	return advance(r.left.value, r.step)
}

func (r numericRange[T]) cursor() *cursor[T] {
	first, ok := r.first()
	return &cursor[T]{
		current: first,
		step:    r.step,
		right:   r.right,
		done:    !ok,
	}
}

func (r numericRange[T]) format(name string, formatValue func(T) string) string {
	return fmt.Sprintf(
		"%s<%s, %s, %v>",
		name,
		r.left.leftString(formatValue),
		r.right.rightString(formatValue),
		r.step,
	)
}

// cursor walks a numericRange from its first value.
type cursor[T Number] struct {
	current T
	step    T
	right   Endpoint[T]
	done    bool
}

func (c *cursor[T]) Next() (T, bool) {
	if c.done || !c.inBounds() {
		c.done = true
		var zero T
		return zero, false
	}
	value := c.current
	next, moved := advance(c.current, c.step)
	if !moved {
		// Overflow, a zero step, or a step too small to change the value.
		c.done = true
	}
	c.current = next
	return value, true
}

func (c *cursor[T]) Remove() error {
	return errors.Wrap(ErrUnsupportedOperation, "cannot remove a value from a range")
}

func (c *cursor[T]) inBounds() bool {
	if c.step < 0 {
		if c.right.IsClosed() {
			return c.current >= c.right.value
		}
		return c.current > c.right.value
	}
	if c.right.IsClosed() {
		return c.current <= c.right.value
	}
	return c.current < c.right.value
}

// advance returns v+step and true if the sum moved in the direction of step.
func advance[T Number](v T, step T) (T, bool) {
	next := v + step
	switch {
	case step > 0:
		return next, next > v
	case step < 0:
		return next, next < v
	default:
		return next, false
	}
}

func signum[T Number](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// direction compares instead of subtracting so integer extremes cannot overflow.
// It returns 0 when from and to are unordered (NaN).
func direction[T Number](from T, to T) int {
	switch {
	case to > from:
		return 1
	case to < from:
		return -1
	default:
		return 0
	}
}

func defaultStep[T Number](from T, to T) T {
	if to < from {
		return -1
	}
	return 1
}
