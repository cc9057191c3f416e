// SPDX-License-Identifier: MIT
// Package coo_test — converter tests: dense, external triplet and
// edge-list boundaries, plus the round-trip properties.
package coo_test

import (
	"math"
	"testing"

	"github.com/james-bowman/sparse"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/dagtools/sparsebn/coo"
	"github.com/dagtools/sparsebn/edgelist"
)

func TestFromDenseSingleEntry(t *testing.T) {
	t.Parallel()

	// [[0,2],[0,0]] — the canonical worked example.
	d := mat.NewDense(2, 2, []float64{0, 2, 0, 0})

	t.Run("one based", func(t *testing.T) {
		x, err := coo.FromDense(d, coo.OneBased, silence())
		require.NoError(t, err)
		require.Equal(t, []int{1}, x.Rows())
		require.Equal(t, []int{2}, x.Cols())
		require.Equal(t, []float64{2.0}, x.Vals())
		require.Equal(t, coo.OneBased, x.Base())
	})

	t.Run("zero based", func(t *testing.T) {
		x, err := coo.FromDense(d, coo.ZeroBased, silence())
		require.NoError(t, err)
		require.Equal(t, []int{0}, x.Rows())
		require.Equal(t, []int{1}, x.Cols())
		require.Equal(t, []float64{2.0}, x.Vals())
		require.Equal(t, coo.ZeroBased, x.Base())
	})
}

func TestFromDenseColumnMajorOrder(t *testing.T) {
	t.Parallel()

	// Entries in three columns; column-major traversal dictates the
	// stored order: (2,1), (1,2), (3,2), (2,3).
	d := mat.NewDense(3, 3, []float64{
		0, 4, 0,
		1, 0, 6,
		0, 5, 0,
	})
	x, err := coo.FromDense(d, coo.OneBased, silence())
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 3, 2}, x.Rows())
	require.Equal(t, []int{1, 2, 2, 3}, x.Cols())
	require.Equal(t, []float64{1, 4, 5, 6}, x.Vals())
}

func TestFromDenseValidation(t *testing.T) {
	t.Parallel()

	_, err := coo.FromDense(nil, coo.OneBased, silence())
	require.ErrorIs(t, err, coo.ErrNilMatrix)

	_, err = coo.FromDense(mat.NewDense(2, 3, nil), coo.OneBased, silence())
	require.ErrorIs(t, err, coo.ErrNonSquare)

	_, err = coo.FromDense(mat.NewDense(2, 2, nil), coo.IndexBase(2), silence())
	require.ErrorIs(t, err, coo.ErrBadIndexBase)
}

func TestFromDenseTolerancesAndNaN(t *testing.T) {
	t.Parallel()

	// A sub-tolerance magnitude is structurally zero; NaN is an edge with
	// an unknown weight and must be kept.
	d := mat.NewDense(2, 2, []float64{
		1e-12, math.NaN(),
		0, 3,
	})
	x, err := coo.FromDense(d, coo.OneBased, silence())
	require.NoError(t, err)
	require.Equal(t, 2, x.NNZ())
	require.Equal(t, []int{1, 2}, x.Rows())
	require.Equal(t, []int{2, 2}, x.Cols())
	require.True(t, math.IsNaN(x.Vals()[0]))
	require.Equal(t, 3.0, x.Vals()[1])

	count, err := x.EdgeCountThreshold()
	require.NoError(t, err, "dense ingestion and threshold counting share one predicate")
	require.Equal(t, 2, count)
}

func TestDenseRoundTrip(t *testing.T) {
	t.Parallel()

	d := mat.NewDense(4, 4, []float64{
		0, 0, 3, 0,
		-2, 0, 0, 0,
		0, 0.5, 0, 1,
		0, 0, 7, 0,
	})

	for _, base := range []coo.IndexBase{coo.ZeroBased, coo.OneBased} {
		x, err := coo.FromDense(d, base, silence())
		require.NoError(t, err)

		back, err := x.ToDense()
		require.NoError(t, err)
		require.True(t, mat.Equal(d, back), "sparseToDense(denseToSparse(M)) == M at base %d", base)
	}
}

func TestFromNonZeroMatchesFromDense(t *testing.T) {
	t.Parallel()

	// Build the same logical matrix as a dense and as an external COO
	// triplet (inserted in a deliberately scrambled order).
	d := mat.NewDense(3, 3, []float64{
		0, 4, 0,
		1, 0, 6,
		0, 5, 0,
	})
	ext := sparse.NewCOO(3, 3, nil, nil, nil)
	ext.Set(1, 2, 6)
	ext.Set(0, 1, 4)
	ext.Set(2, 1, 5)
	ext.Set(1, 0, 1)

	for _, base := range []coo.IndexBase{coo.ZeroBased, coo.OneBased} {
		fromDense, err := coo.FromDense(d, base, silence())
		require.NoError(t, err)
		fromTriplet, err := coo.FromNonZero(ext, base, silence())
		require.NoError(t, err)

		require.True(t, fromDense.Equal(fromTriplet),
			"both converters must produce bit-identical results at base %d", base)
	}
}

func TestFromNonZeroValidation(t *testing.T) {
	t.Parallel()

	_, err := coo.FromNonZero(nil, coo.OneBased, silence())
	require.ErrorIs(t, err, coo.ErrNilMatrix)

	_, err = coo.FromNonZero(sparse.NewCOO(2, 3, nil, nil, nil), coo.OneBased, silence())
	require.ErrorIs(t, err, coo.ErrNonSquare)

	_, err = coo.FromNonZero(sparse.NewCOO(2, 2, nil, nil, nil), coo.IndexBase(-1), silence())
	require.ErrorIs(t, err, coo.ErrBadIndexBase)
}

func TestFromEdgeList(t *testing.T) {
	t.Parallel()

	// {1: [], 2: [1]} — the canonical worked example.
	el, err := edgelist.New(2)
	require.NoError(t, err)
	require.NoError(t, el.SetParents(2, []int{1}))

	x, err := coo.FromEdgeList(el, silence())
	require.NoError(t, err)
	require.Equal(t, []int{1}, x.Rows())
	require.Equal(t, []int{2}, x.Cols())
	require.Len(t, x.Vals(), 1)
	require.True(t, math.IsNaN(x.Vals()[0]), "edge-lists carry no weights")
	r, c := x.Dim()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, coo.OneBased, x.Base(), "edge-list conversions are always 1-based")

	_, err = coo.FromEdgeList(nil, silence())
	require.ErrorIs(t, err, coo.ErrNilMatrix)
}

func TestFromEdgeListLarger(t *testing.T) {
	t.Parallel()

	// 2←1, 3←{1,2}: triplets grouped child by child.
	el, err := edgelist.New(3)
	require.NoError(t, err)
	require.NoError(t, el.SetParents(2, []int{1}))
	require.NoError(t, el.SetParents(3, []int{2, 1}))

	x, err := coo.FromEdgeList(el, silence())
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 2}, x.Rows())
	require.Equal(t, []int{2, 3, 3}, x.Cols())
	require.Equal(t, 3, x.EdgeCount())

	count, err := x.EdgeCountThreshold()
	require.NoError(t, err, "NaN weights count as non-negligible")
	require.Equal(t, 3, count)
}

func TestToDenseFromZeroBased(t *testing.T) {
	t.Parallel()

	x, err := coo.New(coo.Components{
		Rows: []int{0},
		Cols: []int{1},
		Vals: []float64{2},
		Dim:  []int{2, 2},
		Base: 0,
	}, silence())
	require.NoError(t, err)

	d, err := x.ToDense()
	require.NoError(t, err)
	require.Equal(t, 2.0, d.At(0, 1), "0-based matrices are lifted to the 1-based view first")
	require.Equal(t, 0.0, d.At(1, 0), "unset cells stay zero")
}

func TestLabels(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"1", "2", "3"}, coo.Labels(3))
	require.Empty(t, coo.Labels(0))
}
