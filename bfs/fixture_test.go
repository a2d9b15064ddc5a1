// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grblas/bfs"
	"github.com/katalvlaran/grblas/fixture"
)

func TestFixtures(t *testing.T) {
	t.Parallel()

	set, err := fixture.Load("testdata/graphs.json")
	require.NoError(t, err)

	cases, err := set.Block("test_bfs")
	require.NoError(t, err)
	for k, c := range cases {
		t.Run("bfs/"+c.Label(k), func(t *testing.T) {
			g, err := c.Graph().Matrix()
			require.NoError(t, err)
			start, err := c.StartVertex()
			require.NoError(t, err)
			want, err := c.ExpectedInts()
			require.NoError(t, err)

			got, err := bfs.BFSAny(g, start)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}

	cases, err = set.Block("test_msbfs")
	require.NoError(t, err)
	for k, c := range cases {
		t.Run("msbfs/"+c.Label(k), func(t *testing.T) {
			g, err := c.Graph().Matrix()
			require.NoError(t, err)
			starts, err := c.StartVertices()
			require.NoError(t, err)
			want, err := c.ExpectedIntRows()
			require.NoError(t, err)

			trees, err := bfs.MultiSourceBFSAny(g, starts)
			require.NoError(t, err)
			require.Len(t, trees, len(want))
			for r, tr := range trees {
				require.Equal(t, starts[r], tr.Source)
				require.Equal(t, want[r], tr.Parents)
			}
		})
	}
}
