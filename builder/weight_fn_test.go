// SPDX-License-Identifier: MIT

package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grblas/builder"
)

func TestWeightFns(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(11))

	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(r))
	require.Equal(t, -2.5, builder.ConstantWeightFn(-2.5)(nil))

	u := builder.UniformWeightFn(3, 4)
	for i := 0; i < 100; i++ {
		w := u(r)
		require.GreaterOrEqual(t, w, 3.0)
		require.Less(t, w, 4.0)
	}
	require.Equal(t, builder.DefaultEdgeWeight, u(nil))
	require.Equal(t, 2.0, builder.UniformWeightFn(2, 2)(r))

	iw := builder.IntegerWeightFn(-1, 1)
	seen := map[float64]bool{}
	for i := 0; i < 200; i++ {
		w := iw(r)
		require.Equal(t, math.Trunc(w), w)
		seen[w] = true
	}
	require.Equal(t, map[float64]bool{-1: true, 0: true, 1: true}, seen)

	wide := builder.IntegerWeightFn(-builder.MaxIntegerWeight, builder.MaxIntegerWeight)
	for i := 0; i < 100; i++ {
		w := wide(r)
		require.LessOrEqual(t, math.Abs(w), float64(builder.MaxIntegerWeight))
	}
	require.Equal(t, 7.0, builder.IntegerWeightFn(7, 7)(r))
}

func TestWeightFns_PanicOnInvalid(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.ConstantWeightFn(math.NaN()) })
	require.Panics(t, func() { builder.ConstantWeightFn(math.Inf(-1)) })
	require.Panics(t, func() { builder.UniformWeightFn(-1, 2) })
	require.Panics(t, func() { builder.UniformWeightFn(3, 2) })
	require.Panics(t, func() { builder.IntegerWeightFn(3, 2) })
	require.Panics(t, func() { builder.IntegerWeightFn(math.MinInt, math.MaxInt) })
	require.Panics(t, func() { builder.IntegerWeightFn(0, builder.MaxIntegerWeight+1) })
	require.False(t, builder.IntegerWeightInRange(math.MinInt))
	require.True(t, builder.IntegerWeightInRange(-builder.MaxIntegerWeight))
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
}
