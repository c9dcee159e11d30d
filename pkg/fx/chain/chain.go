package chain

import (
	"context"

	"github.com/simonepriuli/fx/pkg/fx"
	"github.com/simonepriuli/fx/pkg/fx/solo"
	"github.com/simonepriuli/fx/pkg/fx/tagged"
)

// Chain wraps an fx.Outcome with context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	res fx.Outcome[T]
}

// Start creates a new chain from an fx.Outcome.
func Start[T any](ctx context.Context, r fx.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, fx.Success(v))
}

// Result returns the underlying fx.Outcome.
func (c Chain[T]) Result() fx.Outcome[T] {
	return c.res
}

// Then composes functions that already return fx.Outcome[T].
func (c Chain[T]) Then(onSuccess func(ctx context.Context, v T) fx.Outcome[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// ThenTry composes functions that return (T, error) — like repo calls.
func (c Chain[T]) ThenTry(try func(ctx context.Context, v T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}

// Map transforms the successful value to a new value.
func (c Chain[T]) Map(onSuccess func(ctx context.Context, v T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: fx.Success(onSuccess(c.ctx, c.res.Value()))}
}

// MapErr transforms the error channel only.
func (c Chain[T]) MapErr(onFailure func(ctx context.Context, err error) error) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.MapErr(c.ctx, c.res, onFailure)}
}

// Recover replaces a failure with the handler's outcome.
func (c Chain[T]) Recover(onFailure func(ctx context.Context, err error) fx.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Recover(c.ctx, c.res, onFailure)}
}

// Catch recovers only failures carrying the given tag.
func (c Chain[T]) Catch(tag tagged.Tag,
	handler func(ctx context.Context, err error) fx.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: tagged.Catch(c.ctx, c.res, tag, handler)}
}

// Or keeps the chain when it succeeded, otherwise takes the
// alternative. Folding Or calls over failures leaves the last one.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	return alternative
}

// And keeps the first failure of the two chains, otherwise the
// required chain's result.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

// Ensure triggers side effects for success/failure without changing the
// result.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}
	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to
// solo.Finally.
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}

// Unwrap returns the success value or panics with the contained error.
func (c Chain[T]) Unwrap() T {
	return solo.Unwrap(c.res)
}

// UnwrapOr returns the success value or def.
func (c Chain[T]) UnwrapOr(def T) T {
	return solo.UnwrapOr(c.res, def)
}
