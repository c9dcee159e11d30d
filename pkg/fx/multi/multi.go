package multi

import "github.com/simonepriuli/fx/pkg/fx"

// All reduces an ordered sequence of outcomes to a single outcome of
// the ordered values. The first failure by position wins and remaining
// entries are not inspected. An empty input yields success with an
// empty slice.
func All[T any](outcomes []fx.Outcome[T]) fx.Outcome[[]T] {
	values := make([]T, 0, len(outcomes))

	for _, o := range outcomes {
		if o.IsFailure() {
			return fx.FailFrom[T, []T](o)
		}
		values = append(values, o.Value())
	}
	return fx.Success(values)
}

// Any returns the first success in order. When every entry fails it
// returns the failure of the last entry, last-wins being the deliberate
// tie-break: the most recent failure is assumed the most relevant.
// Calling Any with no outcomes is a caller contract violation and
// panics.
func Any[T any](outcomes ...fx.Outcome[T]) fx.Outcome[T] {
	if len(outcomes) == 0 {
		panic("multi: Any requires at least one outcome")
	}

	for _, o := range outcomes {
		if o.IsSuccess() {
			return o
		}
	}
	return outcomes[len(outcomes)-1]
}

// Pair carries the two values of a successful Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple carries the three values of a successful Zip3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Zip combines two outcomes into one. Evaluation is left to right and
// the first failure wins.
func Zip[A, B any](a fx.Outcome[A], b fx.Outcome[B]) fx.Outcome[Pair[A, B]] {
	if a.IsFailure() {
		return fx.FailFrom[A, Pair[A, B]](a)
	}
	if b.IsFailure() {
		return fx.FailFrom[B, Pair[A, B]](b)
	}
	return fx.Success(Pair[A, B]{First: a.Value(), Second: b.Value()})
}

// Zip3 combines three outcomes, left to right, first failure wins.
func Zip3[A, B, C any](a fx.Outcome[A], b fx.Outcome[B], c fx.Outcome[C]) fx.Outcome[Triple[A, B, C]] {
	if a.IsFailure() {
		return fx.FailFrom[A, Triple[A, B, C]](a)
	}
	if b.IsFailure() {
		return fx.FailFrom[B, Triple[A, B, C]](b)
	}
	if c.IsFailure() {
		return fx.FailFrom[C, Triple[A, B, C]](c)
	}
	return fx.Success(Triple[A, B, C]{First: a.Value(), Second: b.Value(), Third: c.Value()})
}
