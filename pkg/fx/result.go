package fx

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Outcome holds exactly one of a success value or a failure error.
// The isSuccess discriminant is the sole source of truth; outcomes are
// immutable and every operator returns a new one.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Outcome[T] {
	if IsNil(err) {
		// a failure must carry a non-nil error or the discriminant
		// and the error slot would disagree
		err = errors.New("fx: failure with nil error")
	}
	return Outcome[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom converts a failed Outcome to another value type, preserving
// the error and identity metadata. Short-circuiting operators use it to
// propagate failures without re-stamping them.
func FailFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T]) IsFailure() bool {
	return !o.isSuccess
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}
