// Package mst: Prim's algorithm over an indexed min-heap with true
// decrease-key.
package mst

import (
	"fmt"
	"math"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"

	"github.com/aaguirred/primtree/core"
)

// Prim computes the Minimum Spanning Tree (or forest, with WithForest) of an
// undirected, weighted graph by growing outward from the given root vertex.
//
// The priority structure is keyed by the smallest known crossing weight per
// frontier vertex: relaxing a neighbor lowers its key in place rather than
// inserting a duplicate, so every extraction commits exactly one new vertex.
//
// Error conditions:
//   - ErrInvalidGraph: graph is nil, unweighted, directed, or has any
//     directed edge.
//   - ErrDisconnected: empty graph, or (error policy) vertices unreachable
//     from root.
//   - ErrEmptyRoot: root is "".
//   - core.ErrVertexNotFound: root absent from the graph.
//
// Steps:
//  1. Validate graph shape and root.
//  2. Dense-index the sorted vertex set; allocate the frontier heap, the
//     in-tree set, and per-vertex best crossing weight/edge slots.
//  3. Grow the component containing root: extract-min, commit the recorded
//     crossing edge, relax the new vertex's neighbors with strict less-than.
//  4. If vertices remain: error policy reports them; forest policy restarts
//     growth from the smallest unvisited vertex until none remain.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph, root string, opts ...Option) (*Tree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return runPrim(g, root, cfg)
}

func runPrim(g *core.Graph, root string, cfg Options) (*Tree, error) {
	// 1) Validate that the graph is non-nil, weighted, and purely undirected.
	if g == nil || !g.Weighted() || g.Directed() || g.HasDirectedEdges() {
		return nil, ErrInvalidGraph
	}

	// 2) Retrieve all vertex IDs in ascending order. No vertices → no tree.
	ids := g.Vertices()
	if len(ids) == 0 {
		return nil, ErrDisconnected
	}

	// 3) Validate the root: non-empty and present in the graph.
	if root == "" {
		return nil, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: root %q", core.ErrVertexNotFound, root)
	}

	// 4) Dense-index vertices so the frontier heap and in-tree set can work
	//    over [0, n).
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}
	r := &primRunner{
		g:          g,
		cfg:        cfg,
		ids:        ids,
		index:      index,
		inTree:     sparsesets.New(n),
		frontier:   yagh.New[float64](n),
		bestWeight: make([]float64, n),
		bestEdge:   make([]*core.Edge, n),
		tree:       newTree(n),
	}
	for i := range r.bestWeight {
		r.bestWeight[i] = math.Inf(1)
	}

	// 5) Grow the component containing root.
	if err := r.grow(index[root]); err != nil {
		return nil, err
	}

	// 6) Handle leftover vertices according to the disconnected policy.
	if r.visited < n {
		if !cfg.Forest {
			return nil, fmt.Errorf("%w: unreachable vertices %v", ErrDisconnected, r.unvisited())
		}
		// Forest mode: restart from the smallest-ID unvisited vertex until
		// every component is spanned.
		for i := 0; i < n && r.visited < n; i++ {
			if !r.inTree.Contains(i) {
				if err := r.grow(i); err != nil {
					return nil, err
				}
			}
		}
	}

	return r.tree, nil
}

// primRunner holds the mutable state for a single Prim execution.
type primRunner struct {
	g   *core.Graph // input graph; read-only here
	cfg Options

	ids   []string       // dense index → vertex ID, ascending
	index map[string]int // vertex ID → dense index

	inTree     *sparsesets.Set      // vertices already committed to the result
	frontier   *yagh.IntMap[float64] // frontier vertices keyed by best crossing weight
	bestWeight []float64            // smallest known crossing weight per vertex
	bestEdge   []*core.Edge         // crossing edge achieving bestWeight

	visited int // committed vertex count across all components
	tree    *Tree
}

// grow spans the connected component containing the vertex at dense index
// start, appending its edges to the result tree.
func (r *primRunner) grow(start int) error {
	r.tree.Roots = append(r.tree.Roots, r.ids[start])
	r.cfg.OnComponent(r.ids[start])

	// Seed the frontier with the component root at key 0.
	r.bestWeight[start] = 0
	r.bestEdge[start] = nil
	r.frontier.Put(start, 0)

	for r.frontier.Size() > 0 {
		// Extract the frontier vertex with the smallest crossing weight. With
		// true decrease-key there are no stale entries to skip.
		entry := r.frontier.Pop()
		u := entry.Elem

		// Commit u and, except for the component root, its recorded edge.
		r.inTree.Insert(u)
		r.visited++
		if e := r.bestEdge[u]; e != nil {
			r.tree.Edges = append(r.tree.Edges, *e)
			r.tree.TotalWeight += e.Weight
			r.cfg.OnPick(*e, r.tree.TotalWeight)
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every edge incident to the newly committed vertex u and
// lowers the frontier key of any far endpoint it improves.
func (r *primRunner) relax(u int) error {
	uID := r.ids[u]
	neighbors, err := r.g.Neighbors(uID)
	if err != nil {
		return fmt.Errorf("mst: neighbors of %q: %w", uID, err)
	}

	for _, e := range neighbors {
		vID := e.Other(uID)
		if vID == uID {
			continue // self-loop, never part of a tree
		}
		v := r.index[vID]
		if r.inTree.Contains(v) {
			continue // both endpoints in the tree would form a cycle
		}

		// Strict less-than keeps the first-discovered edge on ties, which is
		// the documented deterministic tie-break.
		improved := e.Weight < r.bestWeight[v]
		r.cfg.OnRelax(uID, vID, e.Weight, improved)
		if !improved {
			continue
		}
		// Orient the stored edge tree→frontier so committed edges always read
		// parent→child, whatever the insertion orientation was.
		oriented := *e
		oriented.From, oriented.To = uID, vID
		r.bestWeight[v] = e.Weight
		r.bestEdge[v] = &oriented
		r.frontier.Put(v, e.Weight) // insert or decrease-key
	}

	return nil
}

// unvisited returns the IDs of vertices not yet committed, in ascending order.
func (r *primRunner) unvisited() []string {
	out := make([]string, 0, len(r.ids)-r.visited)
	for i, id := range r.ids {
		if !r.inTree.Contains(i) {
			out = append(out, id)
		}
	}

	return out
}
