package ranges

import "strconv"

// BoundType indicates whether an Endpoint value is contained in the range
// ("closed") or not ("open").
//
// The zero value is not a valid BoundType; constructors taking a BoundType
// reject it with ErrInvalidArgument.
type BoundType uint8

const (
	// BoundTypeOpen indicates that the Endpoint value is not part of the range.
	BoundTypeOpen BoundType = iota + 1

	// BoundTypeClosed indicates that the Endpoint value is part of the range.
	BoundTypeClosed
)

// Valid returns true if b is BoundTypeOpen or BoundTypeClosed.
func (b BoundType) Valid() bool {
	return b == BoundTypeOpen || b == BoundTypeClosed
}

// String implements fmt.Stringer.
func (b BoundType) String() string {
	switch b {
	case BoundTypeOpen:
		return "OPEN"
	case BoundTypeClosed:
		return "CLOSED"
	default:
		return "BoundType(" + strconv.Itoa(int(b)) + ")"
	}
}

// LeftBracket returns "[" for a closed bound and "(" otherwise.
func (b BoundType) LeftBracket() string {
	if b == BoundTypeClosed {
		return "["
	}
	return "("
}

// RightBracket returns "]" for a closed bound and ")" otherwise.
func (b BoundType) RightBracket() string {
	if b == BoundTypeClosed {
		return "]"
	}
	return ")"
}
