package ranges

// DoubleRange is a range of float64 values.
type DoubleRange struct {
	numericRange[float64]
}

var _ Range[float64, float64] = DoubleRange{}

// NewDoubleRange returns a DoubleRange from left to right.
func NewDoubleRange(left Endpoint[float64], right Endpoint[float64], step float64) (DoubleRange, error) {
	r, err := newNumericRange(left, right, step)
	if err != nil {
		return DoubleRange{}, err
	}
	return DoubleRange{numericRange: r}, nil
}

// Contains returns true if v lies within the range on a step boundary,
// allowing for floating point rounding.
//
// This is a lattice test. It can accept values iteration never reaches
// once the step is too small to change the running value.
func (r DoubleRange) Contains(v float64) bool {
	return containsFloat(r.numericRange, v)
}

// ContainsAll returns true if values is non-empty and every value is contained.
func (r DoubleRange) ContainsAll(values []float64) bool {
	return containsAll(values, r.Contains)
}

// Equal returns true if other is a DoubleRange with the same endpoints and step.
func (r DoubleRange) Equal(other Range[float64, float64]) bool {
	o, ok := other.(DoubleRange)
	return ok && r == o
}

func (r DoubleRange) String() string {
	return r.format("DoubleRange", formatValue[float64])
}
