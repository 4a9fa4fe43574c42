package ranges

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidArgument is returned when an endpoint or bound type is missing.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnreachableRange is returned when the step points away from the right endpoint.
	ErrUnreachableRange = errors.New("unreachable range")

	// ErrUnsupportedOperation is returned when a range iterator is asked to mutate.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
