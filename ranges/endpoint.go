package ranges

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Endpoint is one edge of a range: a value and whether that value is included.
//
// Endpoints are immutable and compare structurally, so == and map keys agree
// with Equal.
type Endpoint[T comparable] struct {
	value     T
	boundType BoundType
}

// NewEndpoint returns an Endpoint for value.
//
// Returns ErrInvalidArgument if boundType is not a valid BoundType.
func NewEndpoint[T comparable](value T, boundType BoundType) (Endpoint[T], error) {
	if !boundType.Valid() {
		return Endpoint[T]{}, errors.Wrapf(ErrInvalidArgument, "endpoint %v: bound type %v", value, boundType)
	}
	return Endpoint[T]{value: value, boundType: boundType}, nil
}

// OpenEndpoint returns an Endpoint that excludes value.
func OpenEndpoint[T comparable](value T) Endpoint[T] {
	return Endpoint[T]{value: value, boundType: BoundTypeOpen}
}

// ClosedEndpoint returns an Endpoint that includes value.
func ClosedEndpoint[T comparable](value T) Endpoint[T] {
	return Endpoint[T]{value: value, boundType: BoundTypeClosed}
}

// Value returns the endpoint value.
func (e Endpoint[T]) Value() T {
	return e.value
}

// BoundType returns the endpoint bound type.
func (e Endpoint[T]) BoundType() BoundType {
	return e.boundType
}

// IsClosed returns true if the endpoint value is part of the range.
func (e Endpoint[T]) IsClosed() bool {
	return e.boundType == BoundTypeClosed
}

// Equal returns true if both the values and the bound types match.
func (e Endpoint[T]) Equal(other Endpoint[T]) bool {
	return e == other
}

// LeftString renders the endpoint as the left edge of a range, e.g. "[0".
func (e Endpoint[T]) LeftString() string {
	return e.leftString(formatValue[T])
}

// RightString renders the endpoint as the right edge of a range, e.g. "5)".
func (e Endpoint[T]) RightString() string {
	return e.rightString(formatValue[T])
}

// String implements fmt.Stringer.
func (e Endpoint[T]) String() string {
	return fmt.Sprintf("Endpoint<%v, %v>", e.value, e.boundType)
}

func (e Endpoint[T]) leftString(format func(T) string) string {
	return e.boundType.LeftBracket() + format(e.value)
}

func (e Endpoint[T]) rightString(format func(T) string) string {
	return format(e.value) + e.boundType.RightBracket()
}

func formatValue[T any](v T) string {
	return fmt.Sprint(v)
}
