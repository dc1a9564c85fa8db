// Package core: type declarations, sentinel errors, options, constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrNonFiniteWeight indicates a NaN or infinite edge weight.
	ErrNonFiniteWeight = errors.New("core: edge weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on shallow clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, a finite float64 Weight, and a
// Directed flag mirroring the Graph's directedness at insertion time. For
// undirected edges the (From, To) order is the insertion order; consumers must
// treat the pair as unordered.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of the edge. Always finite.
	Weight float64

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool
}

// Other returns the endpoint of e opposite to id. If id is neither endpoint,
// the empty string is returned.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected, weighted vs. unweighted graphs,
// optional parallel edges (multi-edges) and self-loops.
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed   bool // directedness of new edges
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, a Graph is undirected, unweighted, with no loops and no multi-edges.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether the graph treats edge weights as meaningful.
func (g *Graph) Weighted() bool {
	return g.weighted
}

// Directed reports whether new edges are directed.
func (g *Graph) Directed() bool {
	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	return g.allowMulti
}
