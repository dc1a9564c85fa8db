// Package core: adjacency queries and internal adjacency maintenance.
package core

import "sort"

// Neighbors returns all edges incident to vertex 'id'.
// For directed edges, only outgoing edges are returned; undirected edges are
// returned from both endpoints. The result is sorted by Edge.ID ("e1", "e2",
// ... in insertion order) for determinism.
// Complexity: O(d log d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	// Ensure the vertex exists.
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			// For directed edges, include only those leaving id.
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	// Sort by ID so iteration order is reproducible.
	sort.Slice(out, func(i, j int) bool { return less(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the IDs of all vertices adjacent to id, sorted.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
		} else if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of edges incident to id. Self-loops count once.
// Complexity: O(d log d).
func (g *Graph) Degree(id string) (int, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}

	return len(edges), nil
}

// ensureAdjID makes adjacencyList[id] non-nil.
func (g *Graph) ensureAdjID(id string) {
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjMap ensures adjacencyList[from][to] is initialized.
func (g *Graph) ensureAdjMap(from, to string) {
	g.ensureAdjID(from)
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeEdgeFromAdj deletes eid from both directions if needed.
func removeEdgeFromAdj(g *Graph, eid string, e *Edge) {
	// from -> to
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, eid)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	// mirror when undirected
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, eid)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested maps left behind by deletions. It
// never consults the vertex set: callers hold only muEdgeAdj, and g.vertices
// is guarded by muVert. A top-level entry lives as long as its vertex does;
// RemoveVertex, which holds both locks, deletes it.
func cleanupAdjacency(g *Graph) {
	for _, m := range g.adjacencyList {
		for v, em := range m {
			if len(em) == 0 {
				delete(m, v)
			}
		}
	}
}
