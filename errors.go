package purefunctor

import "github.com/cockroachdb/errors"

// ErrPanic marks errors produced by Recover from a panicking functor.
var ErrPanic = errors.New("functor panicked")
