// Package mass provides channel-lifted variants of the solo operators
// for computations that suspend. Each operator runs its callable in a
// single goroutine and resolves a buffered result channel; failed
// inputs resolve immediately without invoking the callable.
//
// Gathering is the concurrent aggregate: all thunks start before any is
// awaited, and the first-failure-by-position reduction runs only after
// every one has settled.
package mass
