// SPDX-License-Identifier: MIT

package coo_test

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grblas/coo"
	"github.com/katalvlaran/grblas/sparse"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		g    coo.Graph
		want error
	}{
		{"ok", coo.Graph{Size: 2, I: []int{0}, J: []int{1}}, nil},
		{"empty", coo.Graph{}, nil},
		{"negative size", coo.Graph{Size: -1}, coo.ErrBadSize},
		{"I/J length", coo.Graph{Size: 2, I: []int{0, 1}, J: []int{1}}, coo.ErrLengthMismatch},
		{"V length", coo.Graph{Size: 2, I: []int{0}, J: []int{1}, V: []float64{1, 2}}, coo.ErrLengthMismatch},
		{"row range", coo.Graph{Size: 2, I: []int{2}, J: []int{0}}, coo.ErrBadIndex},
		{"col range", coo.Graph{Size: 2, I: []int{0}, J: []int{-1}}, coo.ErrBadIndex},
		{"rect col", coo.Graph{Rows: 2, Cols: 3, I: []int{1}, J: []int{2}}, nil},
		{"NaN", coo.Graph{Size: 1, I: []int{0}, J: []int{0}, V: []float64{math.NaN()}}, coo.ErrInvalidWeight},
		{"+Inf", coo.Graph{Size: 2, I: []int{0}, J: []int{1}, V: []float64{math.Inf(1)}}, coo.ErrInvalidWeight},
		{"-Inf", coo.Graph{Size: 3, I: []int{0, 1}, J: []int{1, 2}, V: []float64{2, math.Inf(-1)}}, coo.ErrInvalidWeight},
		{"large finite", coo.Graph{Size: 2, I: []int{0}, J: []int{1}, V: []float64{-math.MaxFloat64}}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.g.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestInfiniteWeightNeverStored(t *testing.T) {
	t.Parallel()

	g := coo.NewFloat(3, []int{0, 1}, []int{1, 2}, []float64{math.Inf(-1), math.Inf(1)})
	_, err := g.Float()
	require.ErrorIs(t, err, coo.ErrInvalidWeight)
	_, err = g.Matrix()
	require.ErrorIs(t, err, coo.ErrInvalidWeight)
}

func TestConversions(t *testing.T) {
	t.Parallel()

	g := coo.NewFloat(3, []int{0, 1, 0}, []int{1, 2, 1}, []float64{4, 5, 6})

	b, err := g.Bool()
	require.NoError(t, err)
	require.Equal(t, 2, b.NVals(), "duplicate (0,1) collapses")
	require.True(t, b.Has(1, 2))

	f, err := g.Float()
	require.NoError(t, err)
	w, ok := f.Get(0, 1)
	require.True(t, ok)
	require.Equal(t, 6.0, w, "last duplicate wins")

	unweighted := coo.NewBool(2, []int{0}, []int{1})
	f, err = unweighted.Float()
	require.NoError(t, err)
	w, _ = f.Get(0, 1)
	require.Equal(t, 1.0, w)

	m, err := g.Matrix()
	require.NoError(t, err)
	require.IsType(t, &sparse.Matrix[float64]{}, m)

	m, err = unweighted.Matrix()
	require.NoError(t, err)
	require.IsType(t, &sparse.Matrix[bool]{}, m)

	rect := &coo.Graph{Rows: 2, Cols: 3}
	rb, err := rect.Bool()
	require.NoError(t, err)
	require.False(t, rb.Square())

	_, err = (&coo.Graph{Size: 1, I: []int{1}, J: []int{0}}).Bool()
	require.ErrorIs(t, err, coo.ErrBadIndex)
}

func TestNewCopiesInput(t *testing.T) {
	t.Parallel()

	I := []int{0}
	g := coo.NewBool(2, I, []int{1})
	I[0] = 1
	require.Equal(t, []int{0}, g.I)
}

func TestSymmetrize(t *testing.T) {
	t.Parallel()

	g := coo.NewFloat(3, []int{0, 1}, []int{1, 2}, []float64{2, 3})
	m, err := g.Symmetrize().Float()
	require.NoError(t, err)
	require.True(t, sparse.IsSymmetric(m))
	require.Equal(t, 4, m.NVals())
}

func TestDecodeAndLoad(t *testing.T) {
	t.Parallel()

	g, err := coo.Load(filepath.Join("testdata", "triangle.yaml"))
	require.NoError(t, err)
	require.Equal(t, 3, g.Size)
	require.Equal(t, []float64{1.5, 2, -1}, g.V)

	g, err = coo.Load(filepath.Join("testdata", "path.json"))
	require.NoError(t, err)
	require.False(t, g.Weighted())
	require.Equal(t, 3, g.Edges())

	_, err = coo.Load("graph.txt")
	require.ErrorIs(t, err, coo.ErrUnknownFormat)

	_, err = coo.Decode(strings.NewReader(`{"size": 2, "I": [5], "J": [0]}`), coo.FormatJSON)
	require.ErrorIs(t, err, coo.ErrBadIndex)

	_, err = coo.Decode(strings.NewReader(`{"size": `), coo.FormatJSON)
	require.Error(t, err)
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	g := coo.NewFloat(2, []int{0}, []int{1}, []float64{0.25})
	var buf bytes.Buffer
	require.NoError(t, coo.Encode(&buf, g, coo.FormatYAML))
	back, err := coo.Decode(&buf, coo.FormatYAML)
	require.NoError(t, err)
	require.Equal(t, g, back)
}

func TestToGonum(t *testing.T) {
	t.Parallel()

	// Self-loop at 2 is skipped; vertex 3 is isolated but present.
	g := coo.NewFloat(4, []int{0, 1, 2}, []int{1, 2, 2}, []float64{1, 2, 9})
	dg, err := g.ToGonum()
	require.NoError(t, err)
	require.Equal(t, 4, dg.Nodes().Len())
	require.Equal(t, 2, dg.Edges().Len())
	w, ok := dg.Weight(1, 2)
	require.True(t, ok)
	require.Equal(t, 2.0, w)
	w, ok = dg.Weight(2, 2)
	require.True(t, ok)
	require.Zero(t, w)

	ug, err := g.ToGonumUndirected()
	require.NoError(t, err)
	require.Equal(t, 2, ug.Edges().Len())
	require.True(t, ug.HasEdgeBetween(2, 1))

	d, err := g.ToDense()
	require.NoError(t, err)
	require.Equal(t, 9.0, d.At(2, 2))
	require.Equal(t, 0.0, d.At(3, 0))
}
