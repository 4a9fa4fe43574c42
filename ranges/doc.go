/*
Package ranges provides stepped ranges over integers, floating point numbers
and characters.

A range is described by two endpoints and a step. Each endpoint carries a
BoundType telling whether its value belongs to the range (closed) or not
(open). Iterating a range starts at the left endpoint and repeatedly adds the
step until the right endpoint is passed:

	r := ranges.IntegerRangeOf(0, 5)
	for v := range r.All() {
	    fmt.Println(v) // 0 1 2 3 4
	}

Numeric ranges default to the half-open interval [from, to), character
ranges default to the closed interval [from, to]. When no step is given it
is +1 if to >= from and -1 otherwise.

# Construction

Every range type has a canonical constructor taking endpoints and a step:

	left, _ := ranges.NewEndpoint[int32](0, ranges.BoundTypeClosed)
	right, _ := ranges.NewEndpoint[int32](10, ranges.BoundTypeOpen)
	r, err := ranges.NewIntegerRange(left, right, 2)

plus convenience forms (XRangeOf, XRangeWithStep, XRangeWithBounds,
XRangeWithBoundsAndStep). A step that can never reach the right endpoint
from the left endpoint is rejected with ErrUnreachableRange:

	_, err := ranges.IntegerRangeWithStep(0, 10, -1)
	errors.Is(err, ranges.ErrUnreachableRange) // true

# Containment

Contains reports whether a value is one of the values the range yields: it
must lie between the first and last reachable values and land exactly on the
lattice first + k*step. Integer and character ranges test this with exact
integer arithmetic. Float ranges round (x-first)/step to the nearest k, then
accept x when it is within a few units of rounding of first + k*step, and
never further away than a thousandth of the step.

Float containment is a lattice test and does not walk the range. Once a
float step is too small to change the running value, iteration stops, yet
Contains still accepts the lattice points beyond that value.

Ranges are immutable values. They can be compared with == and used as map
keys, and every call to All or Iterator starts a fresh traversal.
*/
package ranges
