package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-compose/pkg/pipeline"
)

func TestTransform(t *testing.T) {
	t.Parallel()

	fn := pipeline.Transform(func(v any) any {
		return v.(string) + "!"
	})

	got, err := fn("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello!", got)
}

func TestApply(t *testing.T) {
	t.Parallel()

	fn := pipeline.Apply(func(v any) (any, error) {
		return nil, assert.AnError
	})

	_, err := fn("hello")
	assert.Equal(t, assert.AnError, err)
}

func TestBind(t *testing.T) {
	t.Parallel()

	bound := pipeline.Bind(multiply, 5)

	got, err := bound(3)
	require.NoError(t, err)
	assert.Equal(t, 15, got)
}

func TestBindAppendsInvocationArgs(t *testing.T) {
	t.Parallel()

	var seen []any
	bound := pipeline.Bind(func(v any, extra ...any) (any, error) {
		seen = append([]any(nil), extra...)

		return v, nil
	}, "fixed")

	_, err := bound(0, "late")
	require.NoError(t, err)
	assert.Equal(t, []any{"fixed", "late"}, seen)
}
