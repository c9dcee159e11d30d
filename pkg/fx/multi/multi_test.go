package multi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonepriuli/fx/pkg/fx"
)

func TestAll_AllSucceed(t *testing.T) {
	t.Parallel()

	out := All([]fx.Outcome[int]{fx.Success(1), fx.Success(2), fx.Success(3)})
	require.True(t, out.IsSuccess())
	assert.Equal(t, []int{1, 2, 3}, out.Value())
}

func TestAll_FirstFailureWins(t *testing.T) {
	t.Parallel()
	e1 := errors.New("e1")
	e2 := errors.New("e2")

	out := All([]fx.Outcome[int]{fx.Success(1), fx.Fail[int](e1), fx.Success(2), fx.Fail[int](e2)})
	require.True(t, out.IsFailure())
	assert.Equal(t, e1, out.Err(), "the first failure by position wins")
}

func TestAll_Empty(t *testing.T) {
	t.Parallel()

	out := All([]fx.Outcome[int]{})
	require.True(t, out.IsSuccess())
	assert.Empty(t, out.Value())
	assert.NotNil(t, out.Value())
}

func TestAny_FirstSuccessWins(t *testing.T) {
	t.Parallel()
	e1 := errors.New("e1")
	e2 := errors.New("e2")

	out := Any(fx.Fail[int](e1), fx.Success(5), fx.Fail[int](e2))
	require.True(t, out.IsSuccess())
	assert.Equal(t, 5, out.Value())
}

func TestAny_AllFailing_LastFailureWins(t *testing.T) {
	t.Parallel()
	e1 := errors.New("e1")
	e2 := errors.New("e2")
	e3 := errors.New("e3")

	out := Any(fx.Fail[int](e1), fx.Fail[int](e2), fx.Fail[int](e3))
	require.True(t, out.IsFailure())
	assert.Equal(t, e3, out.Err(), "last-wins tie-break, not first")
}

func TestAny_EmptyPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Any[int]() })
}

func TestZip(t *testing.T) {
	t.Parallel()

	out := Zip(fx.Success(1), fx.Success("a"))
	require.True(t, out.IsSuccess())
	assert.Equal(t, Pair[int, string]{First: 1, Second: "a"}, out.Value())
}

func TestZip_FirstFailureWins(t *testing.T) {
	t.Parallel()
	e1 := errors.New("e1")
	e2 := errors.New("e2")

	out := Zip(fx.Fail[int](e1), fx.Fail[string](e2))
	require.True(t, out.IsFailure())
	assert.Equal(t, e1, out.Err())

	out = Zip(fx.Success(1), fx.Fail[string](e2))
	require.True(t, out.IsFailure())
	assert.Equal(t, e2, out.Err())
}

func TestZip3(t *testing.T) {
	t.Parallel()
	e2 := errors.New("e2")

	out := Zip3(fx.Success(1), fx.Success("a"), fx.Success(true))
	require.True(t, out.IsSuccess())
	assert.Equal(t, Triple[int, string, bool]{First: 1, Second: "a", Third: true}, out.Value())

	bad := Zip3(fx.Success(1), fx.Fail[string](e2), fx.Success(true))
	require.True(t, bad.IsFailure())
	assert.Equal(t, e2, bad.Err())
}
