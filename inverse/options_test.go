// SPDX-License-Identifier: MIT
package inverse_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/invert/inverse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { inverse.WithStrategy(inverse.Strategy(9)) })
	assert.Panics(t, func() { inverse.WithPivotThreshold(-1) })
	assert.Panics(t, func() { inverse.WithPivotThreshold(math.NaN()) })
	assert.Panics(t, func() { inverse.WithPivotThreshold(math.Inf(1)) })
	assert.Panics(t, func() { inverse.WithConcurrency(0) })

	assert.NotPanics(t, func() { inverse.WithPivotThreshold(0) })
	assert.NotPanics(t, func() { inverse.New[float64](nil, inverse.WithLogger(nil)) })
}

func TestOptions_Strategy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, inverse.DefaultStrategy, inverse.New[float32]().Strategy())
	assert.Equal(t, inverse.StrategyDecomposition,
		inverse.New[float32](inverse.WithStrategy(inverse.StrategyDecomposition)).Strategy())

	assert.Equal(t, "auto", inverse.StrategyAuto.String())
	assert.Equal(t, "decomposition", inverse.StrategyDecomposition.String())
	assert.Equal(t, "Strategy(7)", inverse.Strategy(7).String())
}

func TestSizeClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n     int
		class inverse.SizeClass
		name  string
	}{
		{0, inverse.SizeDynamic, "dynamic"},
		{1, inverse.Size1, "1x1"},
		{2, inverse.Size2, "2x2"},
		{3, inverse.Size3, "3x3"},
		{4, inverse.Size4, "4x4"},
		{5, inverse.SizeDynamic, "dynamic"},
		{100, inverse.SizeDynamic, "dynamic"},
	}
	for _, tc := range tests {
		c := inverse.ClassOf(tc.n)
		assert.Equal(t, tc.class, c, "n=%d", tc.n)
		assert.Equal(t, tc.name, c.String())
		assert.Equal(t, tc.n >= 1 && tc.n <= 4, c.Fixed())
	}
}

func TestLogger_LogInverse(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := inverse.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l.LogInverse(context.Background(), 7, inverse.ClassOf(7), inverse.StrategyAuto, nil)
	l.LogInverse(context.Background(), 2, inverse.Size2, inverse.StrategyAuto, errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, `"msg":"inverse completed"`)
	assert.Contains(t, out, `"class":"dynamic"`)
	assert.Contains(t, out, `"msg":"inverse failed"`)
	assert.Contains(t, out, `"error":"boom"`)

	buf.Reset()
	l.WithDimension(3).LogBatch(context.Background(), 5, nil)
	assert.Contains(t, buf.String(), `"dimension":3`)
}

func TestLogger_Noop(t *testing.T) {
	t.Parallel()

	l := inverse.NoopLogger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
