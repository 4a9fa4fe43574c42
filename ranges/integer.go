package ranges

// IntegerRange is a range of int32 values.
//
// Stepping uses native int32 addition. Iteration stops instead of wrapping
// around when the next value would overflow.
type IntegerRange struct {
	numericRange[int32]
}

var _ Range[int32, int32] = IntegerRange{}

// NewIntegerRange returns an IntegerRange from left to right.
//
// Returns ErrInvalidArgument if an endpoint has no bound type and
// ErrUnreachableRange if step cannot reach right from left.
func NewIntegerRange(left Endpoint[int32], right Endpoint[int32], step int32) (IntegerRange, error) {
	r, err := newNumericRange(left, right, step)
	if err != nil {
		return IntegerRange{}, err
	}
	return IntegerRange{numericRange: r}, nil
}

// Contains returns true if v is one of the values the range yields.
func (r IntegerRange) Contains(v int32) bool {
	return containsInteger(r.numericRange, v)
}

// ContainsAll returns true if values is non-empty and every value is contained.
func (r IntegerRange) ContainsAll(values []int32) bool {
	return containsAll(values, r.Contains)
}

// Equal returns true if other is an IntegerRange with the same endpoints and step.
func (r IntegerRange) Equal(other Range[int32, int32]) bool {
	o, ok := other.(IntegerRange)
	return ok && r == o
}

// String implements fmt.Stringer, e.g. "IntegerRange<[0, 5), 1>".
func (r IntegerRange) String() string {
	return r.format("IntegerRange", formatValue[int32])
}
