// Package chain offers a fluent wrapper over fx.Outcome for callers
// that prefer method chaining to free functions. A Chain carries the
// context alongside the current outcome; every step short-circuits on
// failure the same way the solo operators do.
package chain
