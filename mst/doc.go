// Package mst computes Minimum Spanning Trees (and forests) of undirected,
// weighted *core.Graph values. Two builders are provided: Prim's algorithm,
// which grows outward from a root vertex, and Kruskal's algorithm, which
// merges components over a globally sorted edge list.
//
// # Prim
//
//   - Strategy: maintain a min-priority structure keyed by the smallest known
//     crossing weight per frontier vertex (an indexed heap with true
//     decrease-key), an in-tree set, and the best crossing edge recorded per
//     frontier vertex. Extract the minimum, commit its recorded edge, then
//     relax the new vertex's neighbors.
//   - Complexity: O(E log V) time, O(V + E) memory.
//
// # Kruskal
//
//   - Strategy: sort all edges by ascending weight, then sweep with a
//     disjoint-set (union-find) structure using path compression and union by
//     rank, accepting every edge that joins two components.
//   - Complexity: O(E log E + α(V)·E) ≈ O(E log V).
//
// # Determinism and tie-breaking
//
// Vertices are always processed in ascending ID order and neighbor edges in
// ascending Edge.ID (insertion) order; Prim relaxes with strict less-than and
// Kruskal sorts stably. Among equal-weight crossing edges the one discovered
// earliest in that order therefore wins, and results are identical from run
// to run. No other tie-break rule is promised.
//
// # Disconnected graphs
//
// The disconnected case is an explicit, caller-chosen mode, never an accident
// of the main loop terminating early:
//
//   - Default (error policy): ErrDisconnected, wrapped with the sorted list of
//     vertices unreachable from the root.
//   - WithForest(): a minimum spanning forest. After a component is exhausted,
//     growth restarts from the smallest-ID unvisited vertex; Tree.Roots names
//     the start of each component tree.
//
// # Errors
//
//   - ErrInvalidGraph: nil graph, unweighted graph, or any directed edge —
//     MST requires purely undirected weighted input.
//   - ErrEmptyRoot: Prim invoked with an empty root ID.
//   - core.ErrVertexNotFound: the requested root is absent from the graph.
//   - ErrDisconnected: disconnected input under the error policy, or an empty
//     graph.
//   - ErrUnknownMethod: Compute dispatch with an unrecognized method name.
//
// A graph with a single vertex yields an empty tree with total weight 0 and no
// error. Self-loops never enter a tree; with parallel edges the lighter one is
// selected.
//
// # Observation hooks
//
// WithOnPick, WithOnRelax and WithOnComponent register callbacks fired as the
// tree grows. They exist for tracing and step-by-step narration (see package
// simulate) and must not mutate the graph.
//
// The input graph is read-only to both builders; every invocation allocates
// and returns a fresh *Tree owned by the caller.
package mst
