package solo

import "github.com/simonepriuli/fx/pkg/fx"

// Unwrap returns the success value or panics with the contained error.
// It is the single operation that turns a failure back into a raised
// error, intended only at trust boundaries where recovery is exhausted.
func Unwrap[T any](input fx.Outcome[T]) T {
	if input.IsFailure() {
		panic(input.Err())
	}
	return input.Value()
}

// UnwrapOr returns the success value, or def on failure. Never panics.
func UnwrapOr[T any](input fx.Outcome[T], def T) T {
	if input.IsFailure() {
		return def
	}
	return input.Value()
}

// UnwrapOrElse returns the success value, or the result of onFailure
// applied to the error. Never panics.
func UnwrapOrElse[T any](input fx.Outcome[T], onFailure func(err error) T) T {
	if input.IsFailure() {
		return onFailure(input.Err())
	}
	return input.Value()
}
