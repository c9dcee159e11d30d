// Package fx defines the Outcome container underlying the whole
// algebra: a two-variant value holding either a success value or a
// failure error, never both. Constructors Success and Fail are the only
// way in; FailFrom moves a failure across value types while keeping its
// identity. UnhandledError marks failures that came from a panic rather
// than a declared error channel.
package fx
