// Package tagged annotates errors with a string-like discriminant so
// failures can be recovered selectively. Untagged failures and failures
// carrying another tag pass through the catch operators untouched.
//
// Common usage:
// - Error/Errorf/Fail: build tagged errors and failed outcomes
// - HasTag/TagOf: manual branching on the discriminant
// - Catch/CatchAny: replace a matching failure with a handler's outcome
// - Catching/CatchingAny: channel-lifted variants for suspending handlers
package tagged
