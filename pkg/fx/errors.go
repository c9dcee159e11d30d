package fx

import (
	"errors"
	"fmt"
	"reflect"
)

// UnhandledError wraps a value recovered from a panic in code that was
// expected to return an Outcome. It is produced only at conversion
// boundaries (solo.Try, mass trying, the safe adapters) so callers can
// tell "this callable misbehaved" from a declared failure.
type UnhandledError struct {
	Value any
}

func (e *UnhandledError) Error() string {
	return fmt.Sprintf("unhandled: %v", e.Value)
}

// Unwrap exposes the original value when it was itself an error, so
// errors.Is/As keep working through the wrapper.
func (e *UnhandledError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Unhandled wraps a recovered panic value.
func Unhandled(v any) error {
	return &UnhandledError{Value: v}
}

// AsUnhandled reports whether err carries an UnhandledError anywhere in
// its chain and returns it.
func AsUnhandled(err error) (*UnhandledError, bool) {
	var u *UnhandledError
	if errors.As(err, &u) {
		return u, true
	}
	return nil, false
}

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}
