package ranges

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	// latticeULPs is the rounding slack allowed between a value and the
	// lattice point nearest to it, in units of the machine epsilon of T.
	latticeULPs = 4
	// latticeStepFraction caps that slack relative to the step, so values
	// between two lattice points are never accepted.
	latticeStepFraction = 1e-3
)

// containsInteger tests containment with exact integer arithmetic.
func containsInteger[T constraints.Signed](r numericRange[T], x T) bool {
	if r.IsEmpty() {
		return false
	}
	first, _ := r.first()
	if r.step == 0 {
		return x == first
	}
	last := r.right.value
	if !r.right.IsClosed() {
		last -= T(signum(r.step))
	}
	if !between(x, first, last, r.step) {
		return false
	}
	return distance(first, x)%magnitude(r.step) == 0
}

// containsFloat tests containment in the precision of T.
func containsFloat[T float32 | float64](r numericRange[T], x T) bool {
	if r.IsEmpty() {
		return false
	}
	first, _ := r.first()
	if r.step == 0 {
		return x == first
	}
	last := r.right.value
	if !r.right.IsClosed() {
		last = nextToward(last, first)
	}
	if !between(x, first, last, r.step) {
		return false
	}
	k := T(math.Round(float64((x - first) / r.step)))
	nearest := first + k*r.step
	return math.Abs(float64(x-nearest)) <= slack(x, first, nearest, r.step)
}

// between reports whether x lies in [first, last] walking in the direction of step.
func between[T Number](x T, first T, last T, step T) bool {
	if step < 0 {
		return x <= first && x >= last
	}
	return x >= first && x <= last
}

// distance returns |x - first| without overflowing T.
func distance[T constraints.Signed](first T, x T) uint64 {
	if x >= first {
		return uint64(x) - uint64(first)
	}
	return uint64(first) - uint64(x)
}

// magnitude returns |v|, including for the minimum value of T.
func magnitude[T constraints.Signed](v T) uint64 {
	if v < 0 {
		return -uint64(v)
	}
	return uint64(v)
}

// nextToward returns the representable value next to v in the direction of target.
func nextToward[T float32 | float64](v T, target T) T {
	switch x := any(v).(type) {
	case float32:
		return T(math.Nextafter32(x, float32(target)))
	case float64:
		return T(math.Nextafter(x, float64(target)))
	}
	return v
}

// slack is the largest distance from a lattice point still put down to rounding.
func slack[T float32 | float64](x T, first T, nearest T, step T) float64 {
	scale := max(math.Abs(float64(x)), math.Abs(float64(first)), math.Abs(float64(nearest)))
	return min(latticeULPs*epsilon[T]()*scale, latticeStepFraction*math.Abs(float64(step)))
}

func epsilon[T float32 | float64]() float64 {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 0x1p-23
	}
	return 0x1p-52
}
