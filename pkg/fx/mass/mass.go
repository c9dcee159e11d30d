package mass

import (
	"context"

	"github.com/simonepriuli/fx/pkg/fx"
	"github.com/simonepriuli/fx/pkg/fx/solo"
)

// Mapping lifts solo.Map over a result channel: the transform runs in
// its own goroutine and may block, the outcome arrives on the returned
// channel. A failed input resolves immediately without invoking
// mapOnSuccess.
func Mapping[In, Out any](ctx context.Context, input fx.Outcome[In],
	mapOnSuccess func(ctx context.Context, v In) Out) <-chan fx.Outcome[Out] {

	out := make(chan fx.Outcome[Out], 1)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			out <- fx.Fail[Out](ctx.Err())
			return
		}
		if input.IsFailure() {
			out <- fx.FailFrom[In, Out](input)
			return
		}
		out <- solo.Map(ctx, input, mapOnSuccess)
	}()

	return out
}

// Chaining lifts solo.Chain with the identical short-circuit contract.
func Chaining[In, Out any](ctx context.Context, input fx.Outcome[In],
	chainOnSuccess func(ctx context.Context, v In) fx.Outcome[Out]) <-chan fx.Outcome[Out] {

	out := make(chan fx.Outcome[Out], 1)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			out <- fx.Fail[Out](ctx.Err())
			return
		}
		if input.IsFailure() {
			out <- fx.FailFrom[In, Out](input)
			return
		}
		out <- solo.Chain(ctx, input, chainOnSuccess)
	}()

	return out
}

// MapErring lifts solo.MapErr; successes resolve immediately.
func MapErring[T any](ctx context.Context, input fx.Outcome[T],
	mapOnFailure func(ctx context.Context, err error) error) <-chan fx.Outcome[T] {

	out := make(chan fx.Outcome[T], 1)

	go func() {
		defer close(out)

		if ctx.Err() != nil || input.IsSuccess() {
			out <- input
			return
		}
		out <- solo.MapErr(ctx, input, mapOnFailure)
	}()

	return out
}

// Recovering lifts solo.Recover; successes resolve immediately.
func Recovering[T any](ctx context.Context, input fx.Outcome[T],
	recoverOnFailure func(ctx context.Context, err error) fx.Outcome[T]) <-chan fx.Outcome[T] {

	out := make(chan fx.Outcome[T], 1)

	go func() {
		defer close(out)

		if ctx.Err() != nil || input.IsSuccess() {
			out <- input
			return
		}
		out <- solo.Recover(ctx, input, recoverOnFailure)
	}()

	return out
}

// Trying lifts solo.Try: returned errors become failures, panics become
// fx.UnhandledError failures.
func Trying[In, Out any](ctx context.Context, input fx.Outcome[In],
	onTry func(ctx context.Context, v In) (Out, error)) <-chan fx.Outcome[Out] {

	out := make(chan fx.Outcome[Out], 1)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			out <- fx.Fail[Out](ctx.Err())
			return
		}
		if input.IsFailure() {
			out <- fx.FailFrom[In, Out](input)
			return
		}
		out <- solo.Try(ctx, input, onTry)
	}()

	return out
}

// TryingThunk runs a single (value, error) computation in its own
// goroutine and resolves the channel with its outcome. A rejected
// computation (returned error) and a panic are captured identically to
// the synchronous Try.
func TryingThunk[T any](ctx context.Context,
	thunk func(ctx context.Context) (T, error)) <-chan fx.Outcome[T] {

	out := make(chan fx.Outcome[T], 1)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			out <- fx.Fail[T](ctx.Err())
			return
		}
		out <- solo.Attempt(ctx, thunk)
	}()

	return out
}

// runThunk invokes an outcome-producing thunk, converting a panic into
// an UnhandledError failure.
func runThunk[T any](ctx context.Context,
	thunk func(ctx context.Context) fx.Outcome[T]) (res fx.Outcome[T]) {

	defer func() {
		if r := recover(); r != nil {
			res = fx.Fail[T](fx.Unhandled(r))
		}
	}()

	return thunk(ctx)
}
