// SPDX-License-Identifier: MIT
// Package coo_test — re-indexing, transpose and query operation tests.
package coo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dagtools/sparsebn/coo"
)

// fixture builds a small 1-based matrix: entries (1,2)=2.5 and (3,3)=NaN.
func fixture(t *testing.T, opts ...coo.Option) *coo.Matrix {
	t.Helper()
	if len(opts) == 0 {
		opts = []coo.Option{silence()}
	}
	x, err := coo.New(coo.Components{
		Rows: []int{1, 3},
		Cols: []int{2, 3},
		Vals: []float64{2.5, math.NaN()},
		Dim:  []int{3, 3},
		Base: 1,
	}, opts...)
	require.NoError(t, err)

	return x
}

func TestReindexRoundTrip(t *testing.T) {
	t.Parallel()

	x := fixture(t)

	zero := x.ToZeroBased()
	require.Equal(t, coo.ZeroBased, zero.Base())
	require.Equal(t, []int{0, 2}, zero.Rows())
	require.Equal(t, []int{1, 2}, zero.Cols())
	r, c := zero.Dim()
	require.Equal(t, 3, r, "re-indexing never renumbers dim")
	require.Equal(t, 3, c)

	back := zero.ToOneBased()
	require.True(t, x.Equal(back), "ToOneBased(ToZeroBased(x)) == x")

	// The original is untouched by either hop.
	require.Equal(t, []int{1, 3}, x.Rows())
}

func TestReindexNoOpWarns(t *testing.T) {
	t.Parallel()

	var warned []string
	capture := coo.WithWarnHandler(func(msg string, _ ...any) {
		warned = append(warned, msg)
	})

	x := fixture(t, capture)

	same := x.ToOneBased()
	require.Len(t, warned, 1, "redundant re-index must warn, not error")
	require.Contains(t, warned[0], "already 1-based")
	require.True(t, x.Equal(same))

	// The returned value is an independent clone, not the receiver.
	require.NotSame(t, x, same)

	zero := x.ToZeroBased()
	require.Len(t, warned, 1, "a real re-index is silent")
	zero2 := zero.ToZeroBased()
	require.Len(t, warned, 2)
	require.True(t, zero.Equal(zero2))
}

func TestTransposeInvolution(t *testing.T) {
	t.Parallel()

	x := fixture(t)
	xt := x.Transpose()

	require.Equal(t, x.Rows(), xt.Cols())
	require.Equal(t, x.Cols(), xt.Rows())
	require.InDeltaSlice(t, []float64{2.5}, xt.Vals()[:1], 0, "vals unchanged by transpose")
	require.True(t, x.Equal(xt.Transpose()), "transpose(transpose(x)) == x")
}

func TestQueries(t *testing.T) {
	t.Parallel()

	x := fixture(t)
	require.False(t, x.IsZero())
	require.Equal(t, 3, x.NodeCount())
	require.Equal(t, 2, x.EdgeCount())
	require.Equal(t, 2, x.NNZ())

	empty, err := coo.New(coo.Components{Dim: []int{2, 2}, Base: 1}, silence())
	require.NoError(t, err)
	require.True(t, empty.IsZero())
}

func TestEdgeCountThreshold(t *testing.T) {
	t.Parallel()

	t.Run("consistent", func(t *testing.T) {
		// NaN counts as non-negligible: it is an unknown weight, not a zero.
		x := fixture(t)
		count, err := x.EdgeCountThreshold()
		require.NoError(t, err)
		require.Equal(t, x.NNZ(), count)
	})

	t.Run("negligible stored entry is a defect", func(t *testing.T) {
		// Constructing directly with a sub-tolerance value is legal; the
		// threshold counter is the invariant check that flags it.
		x, err := coo.New(coo.Components{
			Rows: []int{1, 2},
			Cols: []int{1, 2},
			Vals: []float64{1.0, 1e-12},
			Dim:  []int{2, 2},
			Base: 1,
		}, silence())
		require.NoError(t, err)

		_, err = x.EdgeCountThreshold()
		require.ErrorIs(t, err, coo.ErrInternalInvariant)
	})
}

func TestEqualNaNSemantics(t *testing.T) {
	t.Parallel()

	a := fixture(t)
	b := fixture(t)
	require.True(t, a.Equal(b), "NaN compares equal to NaN in Equal")
	require.False(t, a.Equal(a.ToZeroBased()), "differing base is unequal")
	require.False(t, a.Equal(nil))
}
