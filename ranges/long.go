package ranges

// LongRange is a range of int64 values.
type LongRange struct {
	numericRange[int64]
}

var _ Range[int64, int64] = LongRange{}

// NewLongRange returns a LongRange from left to right.
func NewLongRange(left Endpoint[int64], right Endpoint[int64], step int64) (LongRange, error) {
	r, err := newNumericRange(left, right, step)
	if err != nil {
		return LongRange{}, err
	}
	return LongRange{numericRange: r}, nil
}

// Contains returns true if v is one of the values the range yields.
//
// The lattice test is exact for the full int64 domain.
func (r LongRange) Contains(v int64) bool {
	return containsInteger(r.numericRange, v)
}

// ContainsAll returns true if values is non-empty and every value is contained.
func (r LongRange) ContainsAll(values []int64) bool {
	return containsAll(values, r.Contains)
}

// Equal returns true if other is a LongRange with the same endpoints and step.
func (r LongRange) Equal(other Range[int64, int64]) bool {
	o, ok := other.(LongRange)
	return ok && r == o
}

func (r LongRange) String() string {
	return r.format("LongRange", formatValue[int64])
}
