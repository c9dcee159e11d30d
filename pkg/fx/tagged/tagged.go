package tagged

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/simonepriuli/fx/pkg/fx"
)

// Tag discriminates error families for selective recovery. Consumers
// that own a closed tag set should declare it as typed constants.
type Tag string

// TaggedError annotates an error with a Tag. The tag is set once at
// construction and never changes.
type TaggedError struct {
	tag Tag
	err error
}

func (e *TaggedError) Tag() Tag {
	return e.tag
}

func (e *TaggedError) Error() string {
	return fmt.Sprintf("%s: %v", e.tag, e.err)
}

func (e *TaggedError) Unwrap() error {
	return e.err
}

// Error wraps err with a tag.
func Error(tag Tag, err error) error {
	if fx.IsNil(err) {
		err = errors.New("tagged: nil error")
	}
	return &TaggedError{tag: tag, err: err}
}

// Errorf wraps a formatted message with a tag.
func Errorf(tag Tag, format string, args ...any) error {
	return &TaggedError{tag: tag, err: fmt.Errorf(format, args...)}
}

// Fail builds a failed Outcome carrying a tagged error.
func Fail[T any](tag Tag, err error) fx.Outcome[T] {
	return fx.Fail[T](Error(tag, err))
}

// HasTag reports whether err carries the given tag anywhere in its
// chain. Comparison is exact match on the discriminant.
func HasTag(err error, tag Tag) bool {
	t, ok := TagOf(err)
	return ok && t == tag
}

// TagOf returns the tag of the nearest TaggedError in the chain.
func TagOf(err error) (Tag, bool) {
	var te *TaggedError
	if errors.As(err, &te) {
		return te.tag, true
	}
	return "", false
}

// Catch replaces a failure whose tag equals tag with the outcome of
// handler, invoked with the inner (untagged) error. Successes, untagged
// failures and failures carrying another tag pass through unchanged.
func Catch[T any](ctx context.Context, input fx.Outcome[T], tag Tag,
	handler func(ctx context.Context, err error) fx.Outcome[T]) fx.Outcome[T] {

	if input.IsSuccess() {
		return input
	}

	var te *TaggedError
	if errors.As(input.Err(), &te) && te.tag == tag {
		return handler(ctx, te.err)
	}
	return input
}

// CatchAny is Catch over a tag set: the handler runs when the failure's
// tag is a member of tags. Membership, not ordering, decides the match.
func CatchAny[T any](ctx context.Context, input fx.Outcome[T], tags []Tag,
	handler func(ctx context.Context, tag Tag, err error) fx.Outcome[T]) fx.Outcome[T] {

	if input.IsSuccess() {
		return input
	}

	var te *TaggedError
	if errors.As(input.Err(), &te) && slices.Contains(tags, te.tag) {
		return handler(ctx, te.tag, te.err)
	}
	return input
}
