// SPDX-License-Identifier: MIT

package shortestpath_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/grblas/builder"
	"github.com/katalvlaran/grblas/coo"
	"github.com/katalvlaran/grblas/shortestpath"
	"github.com/katalvlaran/grblas/sparse"
)

var inf = math.Inf(1)

func weighted(t *testing.T, n int, I, J []int, V []float64) *sparse.Matrix[float64] {
	t.Helper()
	m, err := coo.NewFloat(n, I, J, V).Float()
	require.NoError(t, err)

	return m
}

func TestSSSP_Small(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		n     int
		I, J  []int
		V     []float64
		start int
		want  []float64
	}{
		{
			name: "two hop beats direct",
			n:    3, I: []int{0, 0, 1}, J: []int{1, 2, 2}, V: []float64{1, 5, 2},
			start: 0, want: []float64{0, 1, 3},
		},
		{
			name: "negative edge without cycle",
			n:    3, I: []int{0, 0, 2}, J: []int{1, 2, 1}, V: []float64{4, 5, -3},
			start: 0, want: []float64{0, 2, 5},
		},
		{
			name: "unreachable and self loop",
			n:    4, I: []int{0, 1, 1}, J: []int{1, 1, 2}, V: []float64{2, 7, 1},
			start: 0, want: []float64{0, 2, 3, inf},
		},
		{
			name: "negative self loop is ignored",
			n:    2, I: []int{0, 0}, J: []int{0, 1}, V: []float64{-4, 1},
			start: 0, want: []float64{0, 1},
		},
		{
			name: "single vertex",
			n:    1, start: 0, want: []float64{0},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := shortestpath.SSSP(weighted(t, tc.n, tc.I, tc.J, tc.V), tc.start)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestMSSP_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	g := weighted(t, 3, []int{0, 1, 1}, []int{1, 1, 2}, []float64{2, 9, 1})
	before := g.Dup()

	_, err := shortestpath.MSSP(g, []int{0, 1})
	require.NoError(t, err)
	_, err = shortestpath.FloydWarshall(g)
	require.NoError(t, err)
	require.True(t, sparse.Equal(before, g))
	require.False(t, g.Has(0, 0))
}

func TestMSSP_Results(t *testing.T) {
	t.Parallel()

	g := weighted(t, 4, []int{0, 1, 2, 3}, []int{1, 2, 3, 0}, []float64{1, 2, 3, 4})

	res, err := shortestpath.MSSP(g, []int{2, 0, 2})
	require.NoError(t, err)
	require.Len(t, res, 3)
	require.Equal(t, shortestpath.Distances{Source: 2, Dist: []float64{7, 8, 0, 3}}, res[0])
	require.Equal(t, shortestpath.Distances{Source: 0, Dist: []float64{0, 1, 3, 6}}, res[1])
	require.Equal(t, res[0], res[2])

	d, ok := res[1].To(3)
	require.True(t, ok)
	require.Equal(t, 6.0, d)
	_, ok = res[1].To(9)
	require.False(t, ok)

	empty, err := shortestpath.MSSP(g, nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestNegativeCycle(t *testing.T) {
	t.Parallel()

	c, err := builder.Build(
		[]builder.BuilderOption{builder.WithDirected(), builder.WithConstantWeight(-1)},
		builder.Path(2), builder.Cycle(3),
	)
	require.NoError(t, err)
	g, err := c.Float()
	require.NoError(t, err)

	// The cycle (vertices 2..4) is unreachable from 0.
	got, err := shortestpath.SSSP(g, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, -1, inf, inf, inf}, got)

	_, err = shortestpath.SSSP(g, 3)
	require.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
	_, err = shortestpath.MSSP(g, []int{0, 2})
	require.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
	_, err = shortestpath.FloydWarshall(g)
	require.ErrorIs(t, err, shortestpath.ErrNegativeCycle)

	// Two arcs of opposite sign form a negative 2-cycle.
	two := weighted(t, 2, []int{0, 1}, []int{1, 0}, []float64{1, -2})
	_, err = shortestpath.FloydWarshall(two)
	require.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
	_, err = shortestpath.SSSP(two, 1)
	require.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	g := weighted(t, 2, []int{0}, []int{1}, []float64{1})
	rect, err := (&coo.Graph{Rows: 2, Cols: 3, I: []int{0}, J: []int{1}, V: []float64{1}}).Float()
	require.NoError(t, err)
	boolean, err := coo.NewBool(2, []int{0}, []int{1}).Matrix()
	require.NoError(t, err)

	_, err = shortestpath.SSSP(nil, 0)
	require.ErrorIs(t, err, shortestpath.ErrGraphNil)
	_, err = shortestpath.FloydWarshall(nil)
	require.ErrorIs(t, err, shortestpath.ErrGraphNil)
	_, err = shortestpath.SSSP(rect, 0)
	require.ErrorIs(t, err, shortestpath.ErrNonSquare)
	_, err = shortestpath.FloydWarshall(rect)
	require.ErrorIs(t, err, shortestpath.ErrNonSquare)
	_, err = shortestpath.SSSP(g, 2)
	require.ErrorIs(t, err, shortestpath.ErrStartOutOfRange)
	_, err = shortestpath.MSSP(g, []int{0, -1})
	require.ErrorIs(t, err, shortestpath.ErrStartOutOfRange)
	_, err = shortestpath.SSSP(g, 0, shortestpath.WithWorkers(-1))
	require.ErrorIs(t, err, shortestpath.ErrOptionViolation)

	_, err = shortestpath.SSSPAny(boolean, 0)
	require.ErrorIs(t, err, shortestpath.ErrTypeMismatch)
	_, err = shortestpath.MSSPAny(boolean, []int{0})
	require.ErrorIs(t, err, shortestpath.ErrTypeMismatch)
	_, err = shortestpath.FloydWarshallAny(boolean)
	require.ErrorIs(t, err, shortestpath.ErrTypeMismatch)
	_, err = shortestpath.FloydWarshallAny(nil)
	require.ErrorIs(t, err, shortestpath.ErrGraphNil)
	res, err := shortestpath.SSSPAny(g, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1}, res)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = shortestpath.SSSP(g, 0, shortestpath.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	_, err = shortestpath.FloydWarshall(g, shortestpath.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// randomDigraph returns a seeded directed graph with integer weights in
// [0, 9]; integer sums keep every comparison exact.
func randomDigraph(t *testing.T, n int, p float64, seed int64) *coo.Graph {
	t.Helper()
	c, err := builder.Build(
		[]builder.BuilderOption{builder.WithDirected(), builder.WithSeed(seed), builder.WithIntegerWeight(0, 9)},
		builder.RandomSparse(n, p),
	)
	require.NoError(t, err)

	return c
}

// TestMatchesGonum checks MSSP against Bellman-Ford and FloydWarshall
// against gonum's dense all-pairs solver on random digraphs.
func TestMatchesGonum(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{4, 5, 6} {
		c := randomDigraph(t, 30, 0.08, seed)
		g, err := c.Float()
		require.NoError(t, err)
		ref, err := c.ToGonum()
		require.NoError(t, err)

		all, ok := path.FloydWarshall(ref)
		require.True(t, ok)
		fw, err := shortestpath.FloydWarshall(g, shortestpath.WithWorkers(2))
		require.NoError(t, err)

		starts := []int{0, 11, 29}
		ms, err := shortestpath.MSSP(g, starts, shortestpath.WithWorkers(3))
		require.NoError(t, err)

		for r, s := range starts {
			bf, ok := path.BellmanFordFrom(simple.Node(int64(s)), ref)
			require.True(t, ok)
			for v := 0; v < c.Size; v++ {
				require.Equal(t, bf.WeightTo(int64(v)), ms[r].Dist[v], "seed %d: %d→%d", seed, s, v)
			}
		}
		for i := 0; i < c.Size; i++ {
			for j := 0; j < c.Size; j++ {
				require.Equal(t, all.Weight(int64(i), int64(j)), fw[i].Dist[j], "seed %d: %d→%d", seed, i, j)
			}
		}
	}
}

func TestFloydWarshall_MatchesMSSP(t *testing.T) {
	t.Parallel()

	c := randomDigraph(t, 25, 0.1, 8)
	g, err := c.Float()
	require.NoError(t, err)

	fw, err := shortestpath.FloydWarshall(g)
	require.NoError(t, err)
	starts := make([]int, c.Size)
	for i := range starts {
		starts[i] = i
	}
	ms, err := shortestpath.MSSP(g, starts)
	require.NoError(t, err)
	require.Equal(t, ms, fw)
}

// TestRerunIsIdentical runs every entry point twice on one matrix with
// fractional weights: results must match bit for bit and the input must be
// left as it was.
func TestRerunIsIdentical(t *testing.T) {
	t.Parallel()

	c, err := builder.Build(
		[]builder.BuilderOption{builder.WithDirected(), builder.WithSeed(5), builder.WithUniformWeight(0.1, 3.7)},
		builder.RandomSparse(25, 0.15),
	)
	require.NoError(t, err)
	g, err := c.Float()
	require.NoError(t, err)
	before := g.Dup()

	cases := []struct {
		name string
		run  func() (any, error)
	}{
		{"sssp", func() (any, error) { return shortestpath.SSSP(g, 3) }},
		{"mssp", func() (any, error) { return shortestpath.MSSP(g, []int{0, 3, 24}) }},
		{"mssp workers", func() (any, error) { return shortestpath.MSSP(g, []int{0, 3, 24}, shortestpath.WithWorkers(3)) }},
		{"floyd-warshall", func() (any, error) { return shortestpath.FloydWarshall(g) }},
	}
	for _, tc := range cases {
		first, err := tc.run()
		require.NoError(t, err, tc.name)
		second, err := tc.run()
		require.NoError(t, err, tc.name)
		require.Equal(t, first, second, tc.name)
		require.True(t, sparse.Equal(before, g), tc.name)
	}
}
