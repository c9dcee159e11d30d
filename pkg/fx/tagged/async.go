package tagged

import (
	"context"

	"github.com/simonepriuli/fx/pkg/fx"
)

// Catching is the channel-lifted Catch: the handler may suspend and the
// result arrives on the returned channel. Non-matching inputs resolve
// immediately without invoking the handler.
func Catching[T any](ctx context.Context, input fx.Outcome[T], tag Tag,
	handler func(ctx context.Context, err error) fx.Outcome[T]) <-chan fx.Outcome[T] {

	out := make(chan fx.Outcome[T], 1)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			out <- input
			return
		}
		out <- Catch(ctx, input, tag, handler)
	}()

	return out
}

// CatchingAny is the channel-lifted CatchAny.
func CatchingAny[T any](ctx context.Context, input fx.Outcome[T], tags []Tag,
	handler func(ctx context.Context, tag Tag, err error) fx.Outcome[T]) <-chan fx.Outcome[T] {

	out := make(chan fx.Outcome[T], 1)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			out <- input
			return
		}
		out <- CatchAny(ctx, input, tags, handler)
	}()

	return out
}
