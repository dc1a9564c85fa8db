// Package core: edge management on the Graph type defined in types.go.
package core

import (
	"fmt"
	"math"
	"sort"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddEdge creates a new edge from 'from' to 'to' with the given weight and
// returns its unique Edge.ID. Both endpoints are created on demand
// (idempotent). For undirected graphs the adjacency is mirrored both ways.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrNonFiniteWeight,
// ErrLoopNotAllowed, or ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// 1) Input validation.
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	// 2) Weight constraints: finite always, non-zero only when weighted.
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("%w: %s→%s weight=%v", ErrNonFiniteWeight, from, to, weight)
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	// 3) Loop constraint.
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	// 4) Ensure both endpoints exist.
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 5) Lock edges & adjacency.
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 6) Multi-edge existence check.
	if !g.allowMulti {
		if inner, ok := g.adjacencyList[from][to]; ok && len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 7) Generate a new atomic Edge.ID and store the edge.
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[eid] = e

	// 8) Insert into nested adjacencyList[from][to][eid].
	g.ensureAdjMap(from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	// 9) Mirror undirected edges (loops skip the mirror).
	if !e.Directed && from != to {
		g.ensureAdjMap(to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID (and its mirror) from the
// graph. Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeEdgeFromAdj(g, eid, e)
	cleanupAdjacency(g)

	return nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if inner, ok := g.adjacencyList[from][to]; ok && len(inner) > 0 {
		return true
	}

	return false
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by their ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i].ID, out[j].ID) })

	return out
}

// EdgeCount returns the total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// HasDirectedEdges reports whether at least one edge has Directed == true.
// Complexity: O(E).
func (g *Graph) HasDirectedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// FilterEdges removes all edges failing the predicate.
// Complexity: O(E).
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for eid, e := range g.edges {
		if !pred(e) {
			removeEdgeFromAdj(g, eid, e)
			delete(g.edges, eid)
		}
	}
	cleanupAdjacency(g)
}

// less orders generated edge IDs numerically ("e2" before "e10") and falls
// back to plain string comparison for IDs of equal length.
func less(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
