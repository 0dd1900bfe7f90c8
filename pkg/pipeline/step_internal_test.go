package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFunc(t *testing.T) {
	t.Parallel()

	step := NewStep("func", Func(func(v any, _ ...any) (any, error) {
		return v, nil
	}))

	fn, err := step.resolve()
	require.NoError(t, err)

	got, err := fn(7)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestResolvePlainFunc(t *testing.T) {
	t.Parallel()

	// An untyped function literal with the right shape resolves too.
	step := NewStep("func", func(v any, _ ...any) (any, error) {
		return v, nil
	})

	fn, err := step.resolve()
	require.NoError(t, err)

	got, err := fn(7)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

type stubResolver struct {
	fn Func
}

func (s stubResolver) Resolve(op string) (Func, bool) {
	if op == "known" {
		return s.fn, true
	}

	return nil, false
}

func TestResolveOperation(t *testing.T) {
	t.Parallel()

	target := stubResolver{fn: func(v any, _ ...any) (any, error) {
		return v.(int) + 1, nil
	}}

	fn, err := NewMethodStep("known", target, "known").resolve()
	require.NoError(t, err)
	got, err := fn(1)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	_, err = NewMethodStep("unknown", target, "unknown").resolve()
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestResolveNilOperation(t *testing.T) {
	t.Parallel()

	// A resolver answering true with a nil Func is as unusable as an
	// unknown operation.
	target := stubResolver{fn: nil}

	_, err := NewMethodStep("nil func", target, "known").resolve()
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestResolveNilTarget(t *testing.T) {
	t.Parallel()

	_, err := NewStep("nil", nil).resolve()
	assert.ErrorIs(t, err, ErrNotCallable)

	_, err = NewMethodStep("nil", nil, "op").resolve()
	assert.ErrorIs(t, err, ErrNotResolvable)
}
