package ranges

import "github.com/cockroachdb/errors"

// Must returns r, panicking if err is non-nil.
//
// Useful for ranges built from constants.
func Must[R any](r R, err error) R {
	if err != nil {
		panic(errors.Wrap(err, "ranges.Must"))
	}
	return r
}

// ============================================================================
// IntegerRange
// ============================================================================

// IntegerRangeOf returns [from, to) stepping by +1 or -1 towards to.
func IntegerRangeOf(from, to int32) IntegerRange {
	return Must(IntegerRangeWithBounds(from, BoundTypeClosed, to, BoundTypeOpen))
}

// IntegerRangeWithStep returns [from, to) stepping by step.
func IntegerRangeWithStep(from, to, step int32) (IntegerRange, error) {
	return IntegerRangeWithBoundsAndStep(from, BoundTypeClosed, to, BoundTypeOpen, step)
}

// IntegerRangeWithBounds returns a range with explicit bound types and the default step.
func IntegerRangeWithBounds(from int32, leftBound BoundType, to int32, rightBound BoundType) (IntegerRange, error) {
	return IntegerRangeWithBoundsAndStep(from, leftBound, to, rightBound, defaultStep(from, to))
}

// IntegerRangeWithBoundsAndStep returns a range with explicit bound types and step.
func IntegerRangeWithBoundsAndStep(from int32, leftBound BoundType, to int32, rightBound BoundType, step int32) (IntegerRange, error) {
	left, right, err := endpoints(from, leftBound, to, rightBound)
	if err != nil {
		return IntegerRange{}, err
	}
	return NewIntegerRange(left, right, step)
}

// ============================================================================
// LongRange
// ============================================================================

// LongRangeOf returns [from, to) stepping by +1 or -1 towards to.
func LongRangeOf(from, to int64) LongRange {
	return Must(LongRangeWithBounds(from, BoundTypeClosed, to, BoundTypeOpen))
}

// LongRangeWithStep returns [from, to) stepping by step.
func LongRangeWithStep(from, to, step int64) (LongRange, error) {
	return LongRangeWithBoundsAndStep(from, BoundTypeClosed, to, BoundTypeOpen, step)
}

// LongRangeWithBounds returns a range with explicit bound types and the default step.
func LongRangeWithBounds(from int64, leftBound BoundType, to int64, rightBound BoundType) (LongRange, error) {
	return LongRangeWithBoundsAndStep(from, leftBound, to, rightBound, defaultStep(from, to))
}

// LongRangeWithBoundsAndStep returns a range with explicit bound types and step.
func LongRangeWithBoundsAndStep(from int64, leftBound BoundType, to int64, rightBound BoundType, step int64) (LongRange, error) {
	left, right, err := endpoints(from, leftBound, to, rightBound)
	if err != nil {
		return LongRange{}, err
	}
	return NewLongRange(left, right, step)
}

// ============================================================================
// FloatRange
// ============================================================================

// FloatRangeOf returns [from, to) stepping by +1 or -1 towards to.
func FloatRangeOf(from, to float32) FloatRange {
	return Must(FloatRangeWithBounds(from, BoundTypeClosed, to, BoundTypeOpen))
}

// FloatRangeWithStep returns [from, to) stepping by step.
func FloatRangeWithStep(from, to, step float32) (FloatRange, error) {
	return FloatRangeWithBoundsAndStep(from, BoundTypeClosed, to, BoundTypeOpen, step)
}

// FloatRangeWithBounds returns a range with explicit bound types and the default step.
func FloatRangeWithBounds(from float32, leftBound BoundType, to float32, rightBound BoundType) (FloatRange, error) {
	return FloatRangeWithBoundsAndStep(from, leftBound, to, rightBound, defaultStep(from, to))
}

// FloatRangeWithBoundsAndStep returns a range with explicit bound types and step.
func FloatRangeWithBoundsAndStep(from float32, leftBound BoundType, to float32, rightBound BoundType, step float32) (FloatRange, error) {
	left, right, err := endpoints(from, leftBound, to, rightBound)
	if err != nil {
		return FloatRange{}, err
	}
	return NewFloatRange(left, right, step)
}

// ============================================================================
// DoubleRange
// ============================================================================

// DoubleRangeOf returns [from, to) stepping by +1 or -1 towards to.
func DoubleRangeOf(from, to float64) DoubleRange {
	return Must(DoubleRangeWithBounds(from, BoundTypeClosed, to, BoundTypeOpen))
}

// DoubleRangeWithStep returns [from, to) stepping by step.
func DoubleRangeWithStep(from, to, step float64) (DoubleRange, error) {
	return DoubleRangeWithBoundsAndStep(from, BoundTypeClosed, to, BoundTypeOpen, step)
}

// DoubleRangeWithBounds returns a range with explicit bound types and the default step.
func DoubleRangeWithBounds(from float64, leftBound BoundType, to float64, rightBound BoundType) (DoubleRange, error) {
	return DoubleRangeWithBoundsAndStep(from, leftBound, to, rightBound, defaultStep(from, to))
}

// DoubleRangeWithBoundsAndStep returns a range with explicit bound types and step.
func DoubleRangeWithBoundsAndStep(from float64, leftBound BoundType, to float64, rightBound BoundType, step float64) (DoubleRange, error) {
	left, right, err := endpoints(from, leftBound, to, rightBound)
	if err != nil {
		return DoubleRange{}, err
	}
	return NewDoubleRange(left, right, step)
}

// ============================================================================
// CharacterRange
// ============================================================================

// CharacterRangeOf returns [from, to] stepping by +1 or -1 towards to.
//
// Unlike the numeric ranges both ends are included.
func CharacterRangeOf(from, to rune) CharacterRange {
	return Must(CharacterRangeWithBounds(from, BoundTypeClosed, to, BoundTypeClosed))
}

// CharacterRangeWithStep returns [from, to] stepping by step code points.
func CharacterRangeWithStep(from, to rune, step int) (CharacterRange, error) {
	return CharacterRangeWithBoundsAndStep(from, BoundTypeClosed, to, BoundTypeClosed, step)
}

// CharacterRangeWithBounds returns a range with explicit bound types and the default step.
func CharacterRangeWithBounds(from rune, leftBound BoundType, to rune, rightBound BoundType) (CharacterRange, error) {
	return CharacterRangeWithBoundsAndStep(from, leftBound, to, rightBound, defaultStep(int(from), int(to)))
}

// CharacterRangeWithBoundsAndStep returns a range with explicit bound types and step.
func CharacterRangeWithBoundsAndStep(from rune, leftBound BoundType, to rune, rightBound BoundType, step int) (CharacterRange, error) {
	left, right, err := endpoints(from, leftBound, to, rightBound)
	if err != nil {
		return CharacterRange{}, err
	}
	return NewCharacterRange(left, right, step)
}

func endpoints[T comparable](from T, leftBound BoundType, to T, rightBound BoundType) (Endpoint[T], Endpoint[T], error) {
	left, err := NewEndpoint(from, leftBound)
	if err != nil {
		return Endpoint[T]{}, Endpoint[T]{}, err
	}
	right, err := NewEndpoint(to, rightBound)
	if err != nil {
		return Endpoint[T]{}, Endpoint[T]{}, err
	}
	return left, right, nil
}
