// Package safe wraps outcome-returning callables so they can never
// panic past the caller: arbitrary foreign or legacy code reached
// through a wrapped callable cannot escape the algebra. A recovered
// panic becomes a failure wrapping fx.UnhandledError carrying the
// original panic value uninspected.
//
// Wrap/Wrap1..3 cover synchronous callables of fixed arity; the
// WrapAsync family returns pending computations that always resolve,
// panic or not. All arities share one guarded region.
package safe
