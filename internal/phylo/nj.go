package phylo

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/rodriados/msa/internal/core"
	"github.com/rodriados/msa/internal/distmat"
	"github.com/rodriados/msa/internal/transport"
)

// pairKey canonicalizes an unordered OTU pair for the growing distance
// map below, the same (max,min) convention internal/pairgen uses.
type pairKey struct{ hi, lo int }

func key(a, b int) pairKey {
	if a < b {
		a, b = b, a
	}
	return pairKey{hi: a, lo: b}
}

// candidate is one rank's best join proposal for a neighbor-joining
// step: the pair (u,v) maximizing the Q-criterion. An invalid candidate
// (no owned rows this step) never wins an Allreduce against a valid one.
type candidate struct {
	valid bool
	u, v  int
	q     float64
}

// better is the Allreduce combining function for a neighbor-joining
// step: the larger Q wins; ties break by smaller u, then smaller v, so
// the selected join is identical on every rank regardless of reduction
// order (see DESIGN.md for why maximizing Q, rather than minimizing, is
// the correct convention here).
func better(a, b candidate) candidate {
	if !a.valid {
		return b
	}
	if !b.valid {
		return a
	}
	if a.q != b.q {
		if a.q > b.q {
			return a
		}
		return b
	}
	if a.u != b.u {
		if a.u < b.u {
			return a
		}
		return b
	}
	if a.v <= b.v {
		return a
	}
	return b
}

func betterReducer(a, b any) any {
	return better(a.(candidate), b.(candidate))
}

// Build runs neighbor-joining over d's N OTUs, rank-collective across
// tr, producing a deterministic GuideTree. Every rank must be called
// with an identical d (e.g. the pairwise engine's gathered output) in
// the same program order.
func Build(tr transport.Transport, d *distmat.Matrix) (*GuideTree, error) {
	n := d.N()
	if n < 2 {
		return nil, core.New(core.EmptyDatabase, "neighbor-joining requires at least 2 OTUs")
	}
	if err := checkFinite(d); err != nil {
		return nil, err
	}

	nodes := make([]Node, 2*n-1)
	for i := 0; i < n; i++ {
		nodes[i] = Node{ID: i, Parent: -1, Left: -1, Right: -1, SubtreeLeaves: 1}
	}

	dist := make(map[pairKey]float64, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist[key(i, j)] = d.Get(i, j)
		}
	}

	active := make([]int, n)
	for i := range active {
		active[i] = i
	}

	world, rank := tr.Size(), tr.Rank()
	nextID := n

	for len(active) > 2 {
		k := len(active)

		sums := make(map[int]float64, k)
		row := make([]float64, 0, k-1)
		for _, u := range active {
			row = row[:0]
			for _, v := range active {
				if v != u {
					row = append(row, dist[key(u, v)])
				}
			}
			sums[u] = floats.Sum(row)
		}

		local := candidate{}
		for i, u := range active {
			if world > 1 && i%world != rank {
				continue
			}
			for j := i + 1; j < k; j++ {
				v := active[j]
				q := float64(k-2)*dist[key(u, v)] - sums[u] - sums[v]
				local = better(local, candidate{valid: true, u: u, v: v, q: q})
			}
		}

		result, err := tr.Allreduce(local, betterReducer)
		if err != nil {
			return nil, err
		}
		chosen := result.(candidate)
		if !chosen.valid {
			return nil, core.New(core.InternalInvariant, "neighbor-joining: no candidate pair selected")
		}
		u, v := chosen.u, chosen.v

		duv := dist[key(u, v)]
		branchU := duv/2 + (sums[u]-sums[v])/(2*float64(k-2))
		branchV := duv - branchU

		w := nextID
		nextID++
		nodes[w] = Node{
			ID: w, Parent: -1, Left: u, Right: v,
			BranchLeft: branchU, BranchRight: branchV,
			SubtreeLeaves: nodes[u].SubtreeLeaves + nodes[v].SubtreeLeaves,
		}
		nodes[u].Parent = w
		nodes[v].Parent = w

		for _, z := range active {
			if z == u || z == v {
				continue
			}
			dist[key(w, z)] = (dist[key(u, z)] + dist[key(v, z)] - duv) / 2
		}

		next := make([]int, 0, k-1)
		for _, x := range active {
			if x != u && x != v {
				next = append(next, x)
			}
		}
		next = append(next, w)
		active = next
	}

	u, v := active[0], active[1]
	duv := dist[key(u, v)]
	half := duv / 2
	root := nextID
	nodes[root] = Node{
		ID: root, Parent: -1, Left: u, Right: v,
		BranchLeft: half, BranchRight: half,
		SubtreeLeaves: nodes[u].SubtreeLeaves + nodes[v].SubtreeLeaves,
	}
	nodes[u].Parent = root
	nodes[v].Parent = root

	return &GuideTree{Nodes: nodes, Root: root}, nil
}

func checkFinite(d *distmat.Matrix) error {
	n := d.N()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := d.Get(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return core.New(core.DegenerateDistance, "non-finite distance cell")
			}
		}
	}
	return nil
}
