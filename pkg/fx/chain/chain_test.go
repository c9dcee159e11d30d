package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/simonepriuli/fx/pkg/fx"
	"github.com/simonepriuli/fx/pkg/fx/tagged"
)

func TestStartAndResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, fx.Success(5)).Result()
	if !out.IsSuccess() || out.Value() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 7).Result()
	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success with 7, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")

	called := false
	out := Start(ctx, fx.Fail[int](err)).
		Then(func(ctx context.Context, v int) fx.Outcome[int] {
			called = true
			return fx.Success(v + 1)
		}).Result()

	if out.IsSuccess() || !errors.Is(out.Err(), err) {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if called {
		t.Fatalf("onSuccess should not be called when the chain already failed")
	}
}

func TestThenAndMap_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 3).
		Then(func(ctx context.Context, v int) fx.Outcome[int] { return fx.Success(v * 2) }).
		Map(func(ctx context.Context, v int) int { return v + 1 }).
		Result()

	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success with 7, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("repo down")

	out := FromValue(ctx, 1).
		ThenTry(func(ctx context.Context, v int) (int, error) { return 0, err }).
		Result()
	if out.IsSuccess() || !errors.Is(out.Err(), err) {
		t.Fatalf("expected failure, got: %v", out.Err())
	}

	out = FromValue(ctx, 1).
		ThenTry(func(ctx context.Context, v int) (int, error) { return v + 1, nil }).
		Result()
	if !out.IsSuccess() || out.Value() != 2 {
		t.Fatalf("expected success with 2, got: %v", out.Value())
	}
}

func TestCatch_RecoversOnlyMatchingTag(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	const notFound tagged.Tag = "not_found"

	out := Start(ctx, tagged.Fail[int](notFound, errors.New("gone"))).
		Catch(notFound, func(ctx context.Context, err error) fx.Outcome[int] {
			return fx.Success(0)
		}).Result()
	if !out.IsSuccess() || out.Value() != 0 {
		t.Fatalf("expected tagged failure to be recovered, got: %v", out.Err())
	}

	out = Start(ctx, tagged.Fail[int]("other", errors.New("gone"))).
		Catch(notFound, func(ctx context.Context, err error) fx.Outcome[int] {
			t.Fatal("handler must not run for a non-matching tag")
			return fx.Success(0)
		}).Result()
	if out.IsSuccess() {
		t.Fatalf("non-matching tagged failure must pass through")
	}
}

func TestRecoverAndMapErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	replaced := errors.New("replaced")

	out := Start(ctx, fx.Fail[int](errors.New("boom"))).
		MapErr(func(ctx context.Context, err error) error { return replaced }).
		Result()
	if out.IsSuccess() || !errors.Is(out.Err(), replaced) {
		t.Fatalf("expected replaced error, got: %v", out.Err())
	}

	got := Start(ctx, fx.Fail[int](errors.New("boom"))).
		Recover(func(ctx context.Context, err error) fx.Outcome[int] { return fx.Success(9) }).
		Unwrap()
	if got != 9 {
		t.Fatalf("expected recovered value 9, got: %v", got)
	}
}

func TestOr_LastFailureWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e1 := errors.New("e1")
	e2 := errors.New("e2")

	out := Start(ctx, fx.Fail[int](e1)).
		Or(Start(ctx, fx.Fail[int](e2))).
		Result()
	if out.IsSuccess() || !errors.Is(out.Err(), e2) {
		t.Fatalf("folding Or over failures keeps the last one, got: %v", out.Err())
	}

	out = Start(ctx, fx.Success(1)).
		Or(Start(ctx, fx.Fail[int](e2))).
		Result()
	if !out.IsSuccess() || out.Value() != 1 {
		t.Fatalf("a success must win over the alternative")
	}
}

func TestAnd_FirstFailureWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e1 := errors.New("e1")

	out := Start(ctx, fx.Fail[int](e1)).
		And(Start(ctx, fx.Success(2))).
		Result()
	if out.IsSuccess() || !errors.Is(out.Err(), e1) {
		t.Fatalf("And keeps the first failure, got: %v", out.Err())
	}

	out = Start(ctx, fx.Success(1)).
		And(Start(ctx, fx.Success(2))).
		Result()
	if !out.IsSuccess() || out.Value() != 2 {
		t.Fatalf("And yields the required chain's value, got: %v", out.Value())
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var okSeen int
	var errSeen error
	FromValue(ctx, 4).Ensure(
		func(ctx context.Context, v int) { okSeen = v },
		func(ctx context.Context, err error) { errSeen = err },
	)
	if okSeen != 4 || errSeen != nil {
		t.Fatalf("expected success side effect only, got: ok=%v err=%v", okSeen, errSeen)
	}

	boom := errors.New("boom")
	okSeen = 0
	Start(ctx, fx.Fail[int](boom)).Ensure(
		func(ctx context.Context, v int) { okSeen = v },
		func(ctx context.Context, err error) { errSeen = err },
	)
	if okSeen != 0 || !errors.Is(errSeen, boom) {
		t.Fatalf("expected failure side effect only, got: ok=%v err=%v", okSeen, errSeen)
	}
}

func TestFinallyAndUnwrapOr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := FromValue(ctx, 10).Finally(
		func(ctx context.Context, v int) int { return v * 2 },
		func(ctx context.Context, err error) int { return -1 },
	)
	if got != 20 {
		t.Fatalf("expected 20, got: %v", got)
	}

	def := Start(ctx, fx.Fail[int](errors.New("boom"))).UnwrapOr(-5)
	if def != -5 {
		t.Fatalf("expected default -5, got: %v", def)
	}
}
