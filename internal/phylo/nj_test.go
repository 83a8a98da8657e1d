package phylo

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodriados/msa/internal/distmat"
	"github.com/rodriados/msa/internal/transport"
)

func TestBuildRejectsFewerThanTwoOTUs(t *testing.T) {
	_, err := Build(transport.NewLocal(), distmat.New(1))
	require.Error(t, err)
}

func TestBuildTwoOTUsJoinAtRoot(t *testing.T) {
	d := distmat.New(2)
	d.Set(0, 1, 16)

	tree, err := Build(transport.NewLocal(), d)
	require.NoError(t, err)

	assert.Len(t, tree.Nodes, 3)
	assert.Equal(t, 2, tree.Root)
	root := tree.Nodes[tree.Root]
	assert.Equal(t, 0, root.Left)
	assert.Equal(t, 1, root.Right)
	assert.Equal(t, float64(8), root.BranchLeft)
	assert.Equal(t, float64(8), root.BranchRight)
	assert.Equal(t, 2, root.SubtreeLeaves)
}

func TestBuildNodeCountAndLeafNumbering(t *testing.T) {
	n := 5
	d := distmat.New(n)
	v := 1.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d.Set(i, j, v)
			v++
		}
	}

	tree, err := Build(transport.NewLocal(), d)
	require.NoError(t, err)

	assert.Len(t, tree.Nodes, 2*n-1)
	for i := 0; i < n; i++ {
		assert.True(t, tree.Nodes[i].IsLeaf())
	}
	for i := n; i < 2*n-1; i++ {
		assert.False(t, tree.Nodes[i].IsLeaf())
	}
	assert.Equal(t, n, tree.Nodes[tree.Root].SubtreeLeaves)
}

func TestBuildBranchLengthsNonNegativeForAdditiveDistance(t *testing.T) {
	// A distance matrix constructed from a known additive tree (4 leaves
	// joined via two internal edges) must produce non-negative branch
	// lengths throughout.
	n := 4
	d := distmat.New(n)
	// Additive distances from edge lengths: 0-1 via a (len 1 each),
	// 2-3 via b (len 1 each), bridged by edge c (len 2).
	edge := func(x, y float64) float64 { return x + y }
	leafEdge := [4]float64{1, 1, 1, 1}
	bridge := 2.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			same := (i < 2) == (j < 2)
			if same {
				d.Set(i, j, edge(leafEdge[i], leafEdge[j]))
			} else {
				d.Set(i, j, leafEdge[i]+leafEdge[j]+bridge)
			}
		}
	}

	tree, err := Build(transport.NewLocal(), d)
	require.NoError(t, err)
	for _, node := range tree.Nodes {
		if node.IsLeaf() {
			continue
		}
		assert.GreaterOrEqual(t, node.BranchLeft, -1e-6)
		assert.GreaterOrEqual(t, node.BranchRight, -1e-6)
	}
}

func TestBuildDegenerateDistanceFails(t *testing.T) {
	d := distmat.New(3)
	d.Set(0, 1, 1)
	d.Set(0, 2, 1)
	d.Set(1, 2, math.Inf(1))
	_, err := Build(transport.NewLocal(), d)
	require.Error(t, err)
}

func TestBuildDeterministicAcrossWorldSizes(t *testing.T) {
	n := 6
	d := distmat.New(n)
	v := 3.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d.Set(i, j, v)
			v += 1.3
		}
	}

	reference, err := Build(transport.NewLocal(), d)
	require.NoError(t, err)

	for _, world := range []int{1, 2, 3} {
		ranks := transport.NewSimulated(world)
		results := make([]*GuideTree, world)
		errs := make([]error, world)
		var wg sync.WaitGroup
		for i, tr := range ranks {
			wg.Add(1)
			go func(i int, tr transport.Transport) {
				defer wg.Done()
				results[i], errs[i] = Build(tr, d)
			}(i, tr)
		}
		wg.Wait()

		for i, err := range errs {
			require.NoError(t, err)
			assert.Equal(t, reference.Nodes, results[i].Nodes)
			assert.Equal(t, reference.Root, results[i].Root)
		}
	}
}
