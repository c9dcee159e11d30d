package solo

import (
	"context"
	"errors"

	"github.com/simonepriuli/fx/pkg/fx"
)

func Succeed[T any](input T) fx.Outcome[T] {
	return fx.Success(input)
}

func Fail[T any](err error) fx.Outcome[T] {
	return fx.Fail[T](err)
}

// Map transforms the success value; failures pass through by identity
// and onSuccess is never invoked on them.
func Map[In, Out any](ctx context.Context, input fx.Outcome[In],
	onSuccess func(ctx context.Context, v In) Out) fx.Outcome[Out] {

	if input.IsSuccess() {
		return fx.Success(onSuccess(ctx, input.Value()))
	}
	return fx.FailFrom[In, Out](input)
}

// MapErr transforms the error channel only; successes pass through
// unchanged and onFailure is never invoked on them.
func MapErr[T any](ctx context.Context, input fx.Outcome[T],
	onFailure func(ctx context.Context, err error) error) fx.Outcome[T] {

	if input.IsSuccess() {
		return input
	}
	return fx.Fail[T](onFailure(ctx, input.Err()))
}

// Chain moves from Outcome[In] to Outcome[Out] via a function that
// itself returns an outcome. A failed input short-circuits: onSuccess
// is never called and the failure propagates by identity.
func Chain[In, Out any](ctx context.Context, input fx.Outcome[In],
	onSuccess func(ctx context.Context, v In) fx.Outcome[Out]) fx.Outcome[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return fx.FailFrom[In, Out](input)
}

// Recover replaces a failure with the outcome of onFailure, which may
// itself succeed or fail. Successes pass through unchanged.
func Recover[T any](ctx context.Context, input fx.Outcome[T],
	onFailure func(ctx context.Context, err error) fx.Outcome[T]) fx.Outcome[T] {

	if input.IsSuccess() {
		return input
	}
	return onFailure(ctx, input.Err())
}

// Try calls a (value, error) function and converts its error to a
// failure. A panic inside onTry is recovered and returned as a failure
// wrapping fx.UnhandledError; Try never panics on a success input.
func Try[In, Out any](ctx context.Context, input fx.Outcome[In],
	onTry func(ctx context.Context, v In) (Out, error)) (res fx.Outcome[Out]) {

	if input.IsFailure() {
		return fx.FailFrom[In, Out](input)
	}

	defer func() {
		if r := recover(); r != nil {
			res = fx.Fail[Out](fx.Unhandled(r))
		}
	}()

	out, err := onTry(ctx, input.Value())
	if err != nil {
		return fx.Fail[Out](err)
	}
	return fx.Success(out)
}

// Attempt is the conversion boundary from exception-style code into the
// algebra: it invokes thunk and wraps a normal return in success, a
// returned error in failure, and a panic in an UnhandledError failure.
func Attempt[T any](ctx context.Context,
	thunk func(ctx context.Context) (T, error)) (res fx.Outcome[T]) {

	defer func() {
		if r := recover(); r != nil {
			res = fx.Fail[T](fx.Unhandled(r))
		}
	}()

	v, err := thunk(ctx)
	if err != nil {
		return fx.Fail[T](err)
	}
	return fx.Success(v)
}

// Validate fails the outcome when the predicate rejects its value.
func Validate[T any](ctx context.Context, input fx.Outcome[T],
	validate func(ctx context.Context, v T) (valid bool, errMsg string)) fx.Outcome[T] {

	if input.IsSuccess() {
		if valid, errMsg := validate(ctx, input.Value()); !valid {
			return fx.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

// Tee runs a side effect on a success without changing the outcome.
func Tee[T any](ctx context.Context, input fx.Outcome[T],
	onSuccess func(ctx context.Context, v T)) fx.Outcome[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}
	return input
}

// Finally collapses the outcome to a concrete value via the matching
// handler.
func Finally[In, Out any](ctx context.Context, input fx.Outcome[In],
	onSuccess func(ctx context.Context, v In) Out,
	onFailure func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Err())
}
