package ranges

// FloatRange is a range of float32 values.
//
// Values are produced by repeated float32 addition, so rounding error
// accumulates over long ranges. Iteration stops when the step no longer
// changes the value; Contains does not walk the range and still accepts
// lattice points past that value.
type FloatRange struct {
	numericRange[float32]
}

var _ Range[float32, float32] = FloatRange{}

// NewFloatRange returns a FloatRange from left to right.
func NewFloatRange(left Endpoint[float32], right Endpoint[float32], step float32) (FloatRange, error) {
	r, err := newNumericRange(left, right, step)
	if err != nil {
		return FloatRange{}, err
	}
	return FloatRange{numericRange: r}, nil
}

// Contains returns true if v lies within the range on a step boundary.
//
// The computation stays in float32.
func (r FloatRange) Contains(v float32) bool {
	return containsFloat(r.numericRange, v)
}

// ContainsAll returns true if values is non-empty and every value is contained.
func (r FloatRange) ContainsAll(values []float32) bool {
	return containsAll(values, r.Contains)
}

// Equal returns true if other is a FloatRange with the same endpoints and step.
func (r FloatRange) Equal(other Range[float32, float32]) bool {
	o, ok := other.(FloatRange)
	return ok && r == o
}

func (r FloatRange) String() string {
	return r.format("FloatRange", formatValue[float32])
}
