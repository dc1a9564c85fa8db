// Package mst: Kruskal's algorithm via sorted edges and union-find.
package mst

import (
	"fmt"
	"sort"

	"github.com/aaguirred/primtree/core"
)

// Kruskal computes the Minimum Spanning Tree (or forest, with WithForest) of
// an undirected, weighted graph using a disjoint-set structure with path
// compression and union by rank.
//
// Error conditions:
//   - ErrInvalidGraph: graph is nil, unweighted, directed, or has any
//     directed edge.
//   - ErrDisconnected: empty graph, or (error policy) more than one
//     component; the error names the vertices outside the component of the
//     smallest vertex ID.
//
// Steps:
//  1. Validate graph shape; single vertex → trivial empty tree.
//  2. Collect edges, skipping self-loops, and sort stably by ascending
//     weight (ties keep insertion order, the same rule Prim applies).
//  3. Sweep the sorted edges, accepting each one whose endpoints lie in
//     different components, until |V|−1 edges are accepted.
//  4. Fewer than |V|−1 accepted edges means the input is disconnected:
//     error policy fails, forest policy returns all accepted edges with one
//     root (the smallest member) recorded per component.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(V + E).
func Kruskal(g *core.Graph, opts ...Option) (*Tree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return runKruskal(g, cfg)
}

func runKruskal(g *core.Graph, cfg Options) (*Tree, error) {
	// 1) Validate that the graph is non-nil, weighted, and purely undirected.
	if g == nil || !g.Weighted() || g.Directed() || g.HasDirectedEdges() {
		return nil, ErrInvalidGraph
	}

	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return nil, ErrDisconnected
	}

	// 2) Collect candidate edges, skipping self-loops.
	all := g.Edges() // ascending Edge.ID order
	edges := make([]*core.Edge, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}
	// Stable sort by weight keeps insertion order on ties.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3) Disjoint-set over vertex IDs: parent and rank.
	parent := make(map[string]string, n)
	rank := make(map[string]int, n)
	for _, id := range ids {
		parent[id] = id
	}
	// Iterative find with path compression.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v string) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	// 4) Sweep sorted edges, accepting component-joining ones.
	tree := newTree(n)
	for _, e := range edges {
		if find(e.From) == find(e.To) {
			continue
		}
		union(e.From, e.To)
		tree.Edges = append(tree.Edges, *e)
		tree.TotalWeight += e.Weight
		cfg.OnPick(*e, tree.TotalWeight)
		if len(tree.Edges) == n-1 {
			break
		}
	}

	// 5) Roots: the smallest member of each remaining component, ascending.
	//    A connected graph has exactly one.
	seen := make(map[string]struct{}, 1)
	for _, id := range ids {
		r := find(id)
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		tree.Roots = append(tree.Roots, id) // ids ascending → first member is smallest
	}

	// 6) Disconnected input under the error policy fails explicitly, naming
	//    the vertices outside the first component.
	if len(tree.Edges) < n-1 && !cfg.Forest {
		first := find(ids[0])
		var unreachable []string
		for _, id := range ids {
			if find(id) != first {
				unreachable = append(unreachable, id)
			}
		}

		return nil, fmt.Errorf("%w: unreachable vertices %v", ErrDisconnected, unreachable)
	}

	return tree, nil
}
