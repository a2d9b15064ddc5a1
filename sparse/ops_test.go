// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grblas/sparse"
)

// upperPair is the 2×2 matrix [[1 2] [· 3]].
func upperPair(t testing.TB) *sparse.Matrix[int] {
	return mustTriples(t, 2, 2, []int{0, 0, 1}, []int{0, 1, 1}, []int{1, 2, 3})
}

func TestMxM_PlusTimes(t *testing.T) {
	t.Parallel()

	a := upperPair(t)
	c, err := sparse.MxM(a, a, sparse.PlusTimes[int](), nil, sparse.DescDefault)
	require.NoError(t, err)
	require.Equal(t, 3, c.NVals())
	require.Equal(t, [][]int{{1, 8}, {0, 9}}, c.Dense(0))
	require.False(t, c.Has(1, 0), "no contributing pair → no entry, not a stored zero")
}

func TestMxM_MinPlusTwoHop(t *testing.T) {
	t.Parallel()

	g := mustTriples(t, 3, 3, []int{0, 1, 0}, []int{1, 2, 2}, []float64{1, 2, 5})
	c, err := sparse.MxM(g, g, sparse.MinPlus(), nil, sparse.DescDefault)
	require.NoError(t, err)
	require.Equal(t, 1, c.NVals())
	d, ok := c.Get(0, 2)
	require.True(t, ok)
	require.Equal(t, 3.0, d)
}

func TestMxM_Masked(t *testing.T) {
	t.Parallel()

	a := upperPair(t)
	only01 := mustTriples(t, 2, 2, []int{0}, []int{1}, []bool{true})

	c, err := sparse.MxM(a, a, sparse.PlusTimes[int](), only01, sparse.DescDefault)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 8}, {0, 0}}, c.Dense(0))
	require.Equal(t, 1, c.NVals())

	c, err = sparse.MxM(a, a, sparse.PlusTimes[int](), only01, sparse.DescSC)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 0}, {0, 9}}, c.Dense(0))
}

func TestMxMInto_ReplaceAndKeep(t *testing.T) {
	t.Parallel()

	a := upperPair(t)
	only01 := mustTriples(t, 2, 2, []int{0}, []int{1}, []bool{true})

	keep := mustTriples(t, 2, 2, []int{1}, []int{0}, []int{-5})
	require.NoError(t, sparse.MxMInto(keep, a, a, sparse.PlusTimes[int](), only01, sparse.DescDefault))
	require.Equal(t, [][]int{{0, 8}, {-5, 0}}, keep.Dense(0))

	repl := mustTriples(t, 2, 2, []int{1}, []int{0}, []int{-5})
	require.NoError(t, sparse.MxMInto(repl, a, a, sparse.PlusTimes[int](), only01, sparse.DescRS))
	require.Equal(t, [][]int{{0, 8}, {0, 0}}, repl.Dense(0))

	// Output aliasing an operand.
	self := upperPair(t)
	require.NoError(t, sparse.MxMInto(self, self, self, sparse.PlusTimes[int](), nil, sparse.DescDefault))
	require.Equal(t, [][]int{{1, 8}, {0, 9}}, self.Dense(0))

	wrong := mustTriples[int](t, 3, 3, nil, nil, nil)
	require.ErrorIs(t, sparse.MxMInto(wrong, a, a, sparse.PlusTimes[int](), nil, sparse.DescDefault), sparse.ErrDimensionMismatch)
}

func TestMxM_Errors(t *testing.T) {
	t.Parallel()

	a := mustTriples[int](t, 2, 3, nil, nil, nil)
	b := mustTriples[int](t, 2, 2, nil, nil, nil)

	_, err := sparse.MxM(a, b, sparse.PlusTimes[int](), nil, sparse.DescDefault)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.MxM(b, b, sparse.PlusTimes[int](), mustTriples[bool](t, 3, 3, nil, nil, nil), sparse.DescDefault)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.MxM(b, b, sparse.Semiring[int, int, int]{}, nil, sparse.DescDefault)
	require.ErrorIs(t, err, sparse.ErrNilSemiring)

	_, err = sparse.MxM(b, nil, sparse.PlusTimes[int](), nil, sparse.DescDefault)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)

	_, err = sparse.MxM(b, b, sparse.PlusTimes[int](), nil, sparse.DescDefault, sparse.WithWorkers(-1))
	require.ErrorIs(t, err, sparse.ErrOptionViolation)
}

// randomWeighted fills an n×n matrix with roughly density·n² positive weights.
func randomWeighted(t testing.TB, n int, density float64, seed int64) *sparse.Matrix[float64] {
	r := rand.New(rand.NewSource(seed))
	var (
		I, J []int
		V    []float64
	)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if r.Float64() < density {
				I = append(I, i)
				J = append(J, j)
				V = append(V, math.Round(r.Float64()*1000)/10)
			}
		}
	}

	return mustTriples(t, n, n, I, J, V)
}

func TestMxM_WorkersMatchSerial(t *testing.T) {
	t.Parallel()

	g := randomWeighted(t, 61, 0.08, 42)
	mask := randomWeighted(t, 61, 0.3, 7)

	serial, err := sparse.MxM(g, g, sparse.MinPlus(), mask, sparse.DescSC)
	require.NoError(t, err)
	for _, w := range []int{0, 2, 4, 61, 100} {
		par, err := sparse.MxM(g, g, sparse.MinPlus(), mask, sparse.DescSC, sparse.WithWorkers(w))
		require.NoError(t, err)
		require.True(t, sparse.Equal(serial, par), "workers=%d", w)
	}

	sumSerial, err := sparse.MxM(g, g, sparse.PlusTimes[float64](), nil, sparse.DescDefault)
	require.NoError(t, err)
	sumPar, err := sparse.MxM(g, g, sparse.PlusTimes[float64](), nil, sparse.DescDefault, sparse.WithWorkers(3))
	require.NoError(t, err)
	require.True(t, sparse.Equal(sumSerial, sumPar), "float sums must be bit-identical")
}

// chain returns 0→1, 0→2, 1→2 as a bool adjacency matrix.
func chain(t testing.TB) *sparse.Matrix[bool] {
	return mustTriples(t, 3, 3, []int{0, 0, 1}, []int{1, 2, 2}, []bool{true, true, true})
}

func TestVxM_FrontierStep(t *testing.T) {
	t.Parallel()

	g := chain(t)
	front := vectorOf(t, 3, map[int]bool{0: true})

	next, err := sparse.VxM(front, g, sparse.LorLand(), nil, sparse.DescDefault)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, next.Indices())

	visited := vectorOf(t, 3, map[int]int{0: 0, 1: 1})
	next, err = sparse.VxM(front, g, sparse.LorLand(), visited, sparse.DescRSC)
	require.NoError(t, err)
	require.Equal(t, []int{2}, next.Indices())

	// In place: front = front ⊗ G, masked by the complement of visited.
	require.NoError(t, sparse.VxMInto(front, front, g, sparse.LorLand(), visited, sparse.DescRSC))
	require.Equal(t, []int{2}, front.Indices())

	_, err = sparse.VxM(vectorOf[bool](t, 2, nil), g, sparse.LorLand(), nil, sparse.DescDefault)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

func TestMxV(t *testing.T) {
	t.Parallel()

	a := upperPair(t)
	u := vectorOf(t, 2, map[int]int{1: 10})

	w, err := sparse.MxV(a, u, sparse.PlusTimes[int](), nil, sparse.DescDefault)
	require.NoError(t, err)
	require.Equal(t, []int{20, 30}, w.Dense(0))

	w, err = sparse.MxV(a, u, sparse.PlusTimes[int](), vectorOf(t, 2, map[int]bool{1: true}), sparse.DescDefault)
	require.NoError(t, err)
	require.Equal(t, []int{1}, w.Indices())
}

func TestEWise(t *testing.T) {
	t.Parallel()

	a := mustTriples(t, 2, 2, []int{0, 0}, []int{0, 1}, []int{1, 2})
	b := mustTriples(t, 2, 2, []int{0, 1}, []int{1, 1}, []int{10, 5})

	sum, err := sparse.EWiseAdd(a, b, sparse.Plus[int], nil, sparse.DescDefault)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 12}, {0, 5}}, sum.Dense(0))
	require.Equal(t, 3, sum.NVals())

	both, err := sparse.EWiseMult(a, b, sparse.Min[int], nil, sparse.DescDefault)
	require.NoError(t, err)
	require.Equal(t, 1, both.NVals())
	x, _ := both.Get(0, 1)
	require.Equal(t, 2, x)

	_, err = sparse.EWiseAdd(a, mustTriples[int](t, 2, 3, nil, nil, nil), sparse.Plus[int], nil, sparse.DescDefault)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	u := vectorOf(t, 3, map[int]float64{0: 1, 2: 4})
	v := vectorOf(t, 3, map[int]float64{2: 3})
	uv, err := sparse.VectorEWiseAdd(u, v, sparse.Min[float64], nil, sparse.DescDefault)
	require.NoError(t, err)
	require.Equal(t, []float64{1, math.Inf(1), 3}, uv.Dense(math.Inf(1)))
	uv, err = sparse.VectorEWiseMult(u, v, sparse.Plus[float64], nil, sparse.DescDefault)
	require.NoError(t, err)
	require.Equal(t, []int{2}, uv.Indices())
}

func TestApplyRecolorsByColumn(t *testing.T) {
	t.Parallel()

	front := mustTriples(t, 2, 3, []int{0, 1, 1}, []int{2, 0, 1}, []int{7, 7, 7})
	got, err := sparse.Apply(front, func(_, j int, _ int) int { return j }, nil, sparse.DescDefault)
	require.NoError(t, err)
	require.Equal(t, [][]int{{-1, -1, 2}, {0, 1, -1}}, got.Dense(-1))

	skip := mustTriples(t, 2, 3, []int{1}, []int{0}, []bool{true})
	got, err = sparse.Apply(front, func(_, j int, _ int) int { return j }, skip, sparse.DescSC)
	require.NoError(t, err)
	require.Equal(t, 2, got.NVals())
	require.False(t, got.Has(1, 0))
}

func TestTriangularSelection(t *testing.T) {
	t.Parallel()

	var I, J []int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			I, J = append(I, i), append(J, j)
		}
	}
	full := mustTriples(t, 3, 3, I, J, make([]bool, 9))

	require.Equal(t, 3, sparse.Tril(full, -1).NVals())
	require.Equal(t, 3, sparse.Triu(full, 1).NVals())
	require.Equal(t, 6, sparse.Tril(full, 0).NVals())
	require.True(t, sparse.Tril(full, -1).Has(2, 1))
	require.False(t, sparse.Tril(full, -1).Has(1, 1))
	require.True(t, sparse.Triu(full, 1).Has(0, 2))
}

func TestExtractAndTranspose(t *testing.T) {
	t.Parallel()

	a := mustTriples(t, 2, 3, []int{0, 1}, []int{2, 0}, []int{1, 2})

	tr := sparse.Transpose(a)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, [][]int{{0, 2}, {0, 0}, {1, 0}}, tr.Dense(0))

	row, err := sparse.ExtractRow(a, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 1}, row.Dense(0))

	col, err := sparse.ExtractCol(a, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, col.Dense(0))

	cm, err := sparse.ColMatrix(a, 2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1}, {0}}, cm.Dense(0))

	rm, err := sparse.RowMatrix(a, 1)
	require.NoError(t, err)
	require.Equal(t, [][]int{{2, 0, 0}}, rm.Dense(0))

	_, err = sparse.ExtractRow(a, 2)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	_, err = sparse.ColMatrix(a, 3)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestReductions(t *testing.T) {
	t.Parallel()

	a := mustTriples(t, 3, 3, []int{0, 0, 2}, []int{0, 2, 1}, []int{1, 2, 4})
	require.Equal(t, 7, sparse.Reduce(a, sparse.Plus[int], 0))

	rows := sparse.ReduceRows(a, sparse.Plus[int])
	require.Equal(t, []int{0, 2}, rows.Indices())
	require.Equal(t, []int{3, -1, 4}, rows.Dense(-1))
	require.Equal(t, 7, sparse.VectorReduce(rows, sparse.Plus[int], 0))

	p := sparse.Pattern(a)
	require.Equal(t, a.NVals(), p.NVals())
	f := sparse.Convert(a, func(x int) float64 { return float64(x) / 2 })
	y, _ := f.Get(2, 1)
	require.Equal(t, 2.0, y)
}

func TestSetDiag(t *testing.T) {
	t.Parallel()

	g := mustTriples(t, 2, 2, []int{0}, []int{1}, []float64{3})
	require.NoError(t, g.SetDiag(0))
	require.Equal(t, 3, g.NVals())

	rect := mustTriples[float64](t, 2, 3, nil, nil, nil)
	require.ErrorIs(t, rect.SetDiag(0), sparse.ErrDimensionMismatch)
}
