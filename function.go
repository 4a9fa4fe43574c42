package purefunctor

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ============================================================================
// Functions
// ============================================================================

// Function is a functor that takes no arguments and returns a value.
//
// Example:
//
//	now := Function[time.Time](time.Now)
//	stamp := now.Map(func(t time.Time) time.Time { return t.UTC() })
type Function[T any] func() T

// Evaluate calls the function.
func (f Function[T]) Evaluate() T {
	return f()
}

// Map transforms the result.
func (f Function[T]) Map(transform func(T) T) Function[T] {
	return func() T { return transform(f()) }
}

// Tap calls fn with every result without changing it.
func (f Function[T]) Tap(fn func(T)) Function[T] {
	return func() T {
		result := f()
		fn(result)
		return result
	}
}

// Recover returns a function that converts a panic into an error marked with ErrPanic.
func (f Function[T]) Recover() func() (T, error) {
	return func() (result T, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = panicError(r)
			}
		}()
		return f(), nil
	}
}

// UnaryFunction is a functor that takes one argument and returns a value.
//
// Example:
//
//	double := UnaryFunction[int, int](func(n int) int { return n * 2 })
//	logged := double.WithLogging(logger, "double")
type UnaryFunction[A, T any] func(a A) T

// Evaluate calls the function.
func (f UnaryFunction[A, T]) Evaluate(a A) T {
	return f(a)
}

// Map transforms the result.
func (f UnaryFunction[A, T]) Map(transform func(T) T) UnaryFunction[A, T] {
	return func(a A) T { return transform(f(a)) }
}

// Tap calls fn with every argument and result without changing them.
func (f UnaryFunction[A, T]) Tap(fn func(A, T)) UnaryFunction[A, T] {
	return func(a A) T {
		result := f(a)
		fn(a, result)
		return result
	}
}

// Bind fixes the argument, producing a Function.
func (f UnaryFunction[A, T]) Bind(a A) Function[T] {
	return func() T { return f(a) }
}

// WithLogging logs every evaluation at debug level.
func (f UnaryFunction[A, T]) WithLogging(logger *zap.Logger, name string) UnaryFunction[A, T] {
	return func(a A) T {
		result := f(a)
		logger.Debug(
			"evaluated function",
			zap.String("function", name),
			zap.Any("argument", a),
			zap.Any("result", result),
		)
		return result
	}
}

// Recover returns a function that converts a panic into an error marked with ErrPanic.
func (f UnaryFunction[A, T]) Recover() func(A) (T, error) {
	return func(a A) (result T, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = panicError(r)
			}
		}()
		return f(a), nil
	}
}

// BinaryFunction is a functor that takes two arguments and returns a value.
type BinaryFunction[L, R, T any] func(left L, right R) T

// Evaluate calls the function.
func (f BinaryFunction[L, R, T]) Evaluate(left L, right R) T {
	return f(left, right)
}

// Map transforms the result.
func (f BinaryFunction[L, R, T]) Map(transform func(T) T) BinaryFunction[L, R, T] {
	return func(left L, right R) T { return transform(f(left, right)) }
}

// BindFirst fixes the left argument.
func (f BinaryFunction[L, R, T]) BindFirst(left L) UnaryFunction[R, T] {
	return func(right R) T { return f(left, right) }
}

// BindSecond fixes the right argument.
func (f BinaryFunction[L, R, T]) BindSecond(right R) UnaryFunction[L, T] {
	return func(left L) T { return f(left, right) }
}

// Transpose swaps the arguments.
func (f BinaryFunction[L, R, T]) Transpose() BinaryFunction[R, L, T] {
	return func(right R, left L) T { return f(left, right) }
}

// WithLogging logs every evaluation at debug level.
func (f BinaryFunction[L, R, T]) WithLogging(logger *zap.Logger, name string) BinaryFunction[L, R, T] {
	return func(left L, right R) T {
		result := f(left, right)
		logger.Debug(
			"evaluated function",
			zap.String("function", name),
			zap.Any("left", left),
			zap.Any("right", right),
			zap.Any("result", result),
		)
		return result
	}
}

// ============================================================================
// Core Functions
// ============================================================================

// Constant returns a function that always returns v.
func Constant[T any](v T) Function[T] {
	return func() T { return v }
}

// Identity returns a function that returns its argument.
func Identity[A any]() UnaryFunction[A, A] {
	return func(a A) A { return a }
}

// LeftIdentity returns a binary function that returns its left argument.
func LeftIdentity[L, R any]() BinaryFunction[L, R, L] {
	return func(left L, _ R) L { return left }
}

// RightIdentity returns a binary function that returns its right argument.
func RightIdentity[L, R any]() BinaryFunction[L, R, R] {
	return func(_ L, right R) R { return right }
}

// Compose returns g after f: Compose(f, g)(a) == g(f(a)).
func Compose[A, B, C any](f UnaryFunction[A, B], g UnaryFunction[B, C]) UnaryFunction[A, C] {
	return func(a A) C { return g(f(a)) }
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return errors.Mark(errors.WithStack(err), ErrPanic)
	}
	return errors.Wrap(ErrPanic, fmt.Sprint(r))
}
