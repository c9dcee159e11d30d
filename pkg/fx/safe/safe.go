package safe

import (
	"context"

	"github.com/simonepriuli/fx/pkg/fx"
)

// guard is the single guarded region every adapter arity delegates to:
// it invokes an outcome-producing computation and converts a panic into
// a failure wrapping fx.UnhandledError.
func guard[T any](run func() fx.Outcome[T]) (res fx.Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = fx.Fail[T](fx.Unhandled(r))
		}
	}()

	return run()
}

// guardAsync is guard's pending-computation counterpart: the adapter
// owns the goroutine, so a panic inside the computation settles the
// returned channel instead of crashing.
func guardAsync[T any](run func() fx.Outcome[T]) <-chan fx.Outcome[T] {
	out := make(chan fx.Outcome[T], 1)

	go func() {
		defer close(out)
		out <- guard(run)
	}()

	return out
}

// Wrap returns a callable with the same shape that never panics: every
// exit path is a returned Outcome, panics included.
func Wrap[T any](f func(ctx context.Context) fx.Outcome[T]) func(ctx context.Context) fx.Outcome[T] {
	return func(ctx context.Context) fx.Outcome[T] {
		return guard(func() fx.Outcome[T] { return f(ctx) })
	}
}

func Wrap1[A, T any](f func(ctx context.Context, a A) fx.Outcome[T]) func(ctx context.Context, a A) fx.Outcome[T] {
	return func(ctx context.Context, a A) fx.Outcome[T] {
		return guard(func() fx.Outcome[T] { return f(ctx, a) })
	}
}

func Wrap2[A, B, T any](f func(ctx context.Context, a A, b B) fx.Outcome[T]) func(ctx context.Context, a A, b B) fx.Outcome[T] {
	return func(ctx context.Context, a A, b B) fx.Outcome[T] {
		return guard(func() fx.Outcome[T] { return f(ctx, a, b) })
	}
}

func Wrap3[A, B, C, T any](f func(ctx context.Context, a A, b B, c C) fx.Outcome[T]) func(ctx context.Context, a A, b B, c C) fx.Outcome[T] {
	return func(ctx context.Context, a A, b B, c C) fx.Outcome[T] {
		return guard(func() fx.Outcome[T] { return f(ctx, a, b, c) })
	}
}

// WrapAsync returns a callable producing a pending computation that
// always resolves: the inner outcome on normal return, an
// UnhandledError failure when the computation panics.
func WrapAsync[T any](f func(ctx context.Context) fx.Outcome[T]) func(ctx context.Context) <-chan fx.Outcome[T] {
	return func(ctx context.Context) <-chan fx.Outcome[T] {
		return guardAsync(func() fx.Outcome[T] { return f(ctx) })
	}
}

func WrapAsync1[A, T any](f func(ctx context.Context, a A) fx.Outcome[T]) func(ctx context.Context, a A) <-chan fx.Outcome[T] {
	return func(ctx context.Context, a A) <-chan fx.Outcome[T] {
		return guardAsync(func() fx.Outcome[T] { return f(ctx, a) })
	}
}

func WrapAsync2[A, B, T any](f func(ctx context.Context, a A, b B) fx.Outcome[T]) func(ctx context.Context, a A, b B) <-chan fx.Outcome[T] {
	return func(ctx context.Context, a A, b B) <-chan fx.Outcome[T] {
		return guardAsync(func() fx.Outcome[T] { return f(ctx, a, b) })
	}
}

func WrapAsync3[A, B, C, T any](f func(ctx context.Context, a A, b B, c C) fx.Outcome[T]) func(ctx context.Context, a A, b B, c C) <-chan fx.Outcome[T] {
	return func(ctx context.Context, a A, b B, c C) <-chan fx.Outcome[T] {
		return guardAsync(func() fx.Outcome[T] { return f(ctx, a, b, c) })
	}
}
