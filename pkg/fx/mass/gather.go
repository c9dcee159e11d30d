package mass

import (
	"context"
	"sync"

	"github.com/simonepriuli/fx/pkg/fx"
	"github.com/simonepriuli/fx/pkg/fx/multi"
)

// Gathering starts every thunk in its own goroutine before awaiting any
// of them, waits until all have settled, then reduces the outcomes with
// the all-or-first-failure rule of multi.All. Slots keep their input
// position regardless of completion order. A panicking thunk settles as
// an UnhandledError failure instead of crashing its goroutine.
func Gathering[T any](ctx context.Context,
	thunks []func(ctx context.Context) fx.Outcome[T]) <-chan fx.Outcome[[]T] {

	out := make(chan fx.Outcome[[]T], 1)
	settled := make([]fx.Outcome[T], len(thunks))
	wg := &sync.WaitGroup{}

	for i, thunk := range thunks {
		i, thunk := i, thunk
		wg.Add(1)
		go func() {
			defer wg.Done()
			settled[i] = runThunk(ctx, thunk)
		}()
	}

	go func() {
		defer close(out)
		wg.Wait()
		out <- multi.All(settled)
	}()

	return out
}
