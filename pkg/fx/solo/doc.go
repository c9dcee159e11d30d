// Package solo contains single-value, synchronous primitives that
// operate on fx.Outcome[T]. These functions form the core building
// blocks for error-aware pipelines without channels.
//
// Highlights:
// - Succeed/Fail: construct Outcome[T]
// - Map/MapErr: transform the success or error channel
// - Chain: move from Outcome[In] to Outcome[Out]
// - Recover: replace a failure with a handler's outcome
// - Try/Attempt: call (value, error) code and convert error or panic to failure
// - Validate/Tee: validation and side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
// - Unwrap/UnwrapOr/UnwrapOrElse: leave the algebra
package solo
