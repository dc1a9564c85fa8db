// Package mst: the Tree result type and path lookup inside a built tree.
package mst

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aaguirred/primtree/core"
)

// ErrNoTreePath indicates that no path exists between two vertices inside a
// built tree (absent vertex, or endpoints in different forest components).
var ErrNoTreePath = errors.New("mst: no path between vertices in tree")

// Tree is the result of an MST computation: a spanning tree of the connected
// input graph, or a spanning forest under WithForest.
//
// Edges are listed in discovery order. TotalWeight is the sum of their
// weights. Roots records the vertex each component tree was grown from, in
// discovery order — a connected input yields exactly one root.
type Tree struct {
	Edges       []core.Edge
	TotalWeight float64
	Roots       []string
}

func newTree(n int) *Tree {
	capEdges := 0
	if n > 1 {
		capEdges = n - 1
	}

	return &Tree{Edges: make([]core.Edge, 0, capEdges)}
}

// Len returns the number of edges in the tree.
func (t *Tree) Len() int { return len(t.Edges) }

// Vertices returns every vertex touched by the tree in ascending order.
// Component roots are included even when isolated (a single-vertex tree has
// no edges but still spans its root).
// Complexity: O((V + E) log V).
func (t *Tree) Vertices() []string {
	seen := make(map[string]struct{}, len(t.Edges)+1)
	for _, r := range t.Roots {
		seen[r] = struct{}{}
	}
	for _, e := range t.Edges {
		seen[e.From] = struct{}{}
		seen[e.To] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Path returns the unique path between from and to inside the tree, as the
// ordered vertex sequence and the sum of traversed edge weights.
//
// Both endpoints must be spanned by the tree and lie in the same component;
// otherwise ErrNoTreePath is returned naming the offending vertex or pair.
// Complexity: O(V + E) — a breadth-first walk over the tree edges.
func (t *Tree) Path(from, to string) ([]string, float64, error) {
	// Adjacency restricted to tree edges.
	adj := make(map[string][]core.Edge, len(t.Edges)*2)
	for _, e := range t.Edges {
		adj[e.From] = append(adj[e.From], e)
		adj[e.To] = append(adj[e.To], e)
	}
	spans := func(id string) bool {
		if _, ok := adj[id]; ok {
			return true
		}
		for _, r := range t.Roots {
			if r == id {
				return true
			}
		}

		return false
	}
	if !spans(from) {
		return nil, 0, fmt.Errorf("%w: %q not in tree", ErrNoTreePath, from)
	}
	if !spans(to) {
		return nil, 0, fmt.Errorf("%w: %q not in tree", ErrNoTreePath, to)
	}
	if from == to {
		return []string{from}, 0, nil
	}

	// Breadth-first walk recording predecessors until to is reached.
	prev := map[string]string{from: ""}
	weightTo := map[string]float64{}
	queue := []string{from}
	for len(queue) > 0 && prev[to] == "" {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range adj[cur] {
			nb := e.Other(cur)
			if _, visited := prev[nb]; visited {
				continue
			}
			prev[nb] = cur
			weightTo[nb] = e.Weight
			if nb == to {
				break
			}
			queue = append(queue, nb)
		}
	}
	if _, ok := prev[to]; !ok {
		return nil, 0, fmt.Errorf("%w: %q and %q are in different components", ErrNoTreePath, from, to)
	}

	// Reconstruct from → to and total the traversed weights.
	var path []string
	var weight float64
	for cur := to; cur != ""; cur = prev[cur] {
		path = append(path, cur)
		weight += weightTo[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, weight, nil
}
