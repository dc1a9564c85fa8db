// Package core: vertex management on the Graph type defined in types.go.
//
// All operations are thread-safe and O(1) amortized unless noted. Adjacency is
// stored as a nested map adjacencyList[from][to][edgeID] = struct{}{}, allowing
// constant-time existence, insertion, and deletion of edges.
package core

import "sort"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// Validate input: empty IDs are not allowed.
	if id == "" {
		return ErrEmptyVertexID
	}
	// Acquire write lock on vertices only.
	g.muVert.Lock()
	defer g.muVert.Unlock()

	// No-op for an existing vertex.
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	// Initialize the adjacency entry for this vertex.
	g.muEdgeAdj.Lock()
	g.ensureAdjID(id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if it does not exist.
// Complexity: O(E) worst case (scan of the edge catalog).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	// Lock vertices and edges+adjacency to prevent races.
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	// Remove all edges where id is either endpoint.
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			removeEdgeFromAdj(g, eid, e)
			delete(g.edges, eid)
		}
	}

	delete(g.vertices, id)
	delete(g.adjacencyList, id)
	cleanupAdjacency(g)

	return nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// VerticesMap returns a shallow copy of the vertex map.
// Complexity: O(V).
func (g *Graph) VerticesMap() map[string]*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make(map[string]*Vertex, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = v
	}

	return out
}
