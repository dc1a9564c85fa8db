// Package core defines the central Graph, Vertex, and Edge types used by every
// algorithm in primtree, and provides thread-safe primitives for building,
// querying, and cloning graphs.
//
// Weights are float64 and must be finite: AddEdge rejects NaN and ±Inf with
// ErrNonFiniteWeight. Negative weights are accepted; minimum-spanning-tree
// construction does not depend on sign.
//
// All core APIs use two sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs may be mutated across
// goroutines with minimal contention. The consumers in this module are
// single-threaded; the locks only guarantee consistent reads.
//
// Determinism: Vertices() returns IDs in ascending order, Edges() and
// Neighbors() return edges in ascending Edge.ID order. Algorithms built on
// core therefore behave identically from run to run.
//
// Typical construction:
//
//	g := core.NewGraph(core.WithWeighted())
//	g.AddEdge("A", "B", 1.5)   // endpoints are created on demand
//	g.AddEdge("B", "C", 2)
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrNonFiniteWeight     - NaN or infinite weight.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
