// Package simulate renders a step-by-step narration of a minimum spanning
// tree computation on top of package mst.
//
// A Simulator subscribes to the mst observation hooks and writes one block
// per accepted edge: the frontier ordered by candidate weight, the edge that
// was committed, the set of visited vertices and the running total. In forest
// mode every component restart is announced before its first step.
//
// What Simulator prints:
//
//	Start prim from: A
//	Vertices: 4, edges: 4
//
//	Step 1
//	  frontier: B(A-B:1) D(A-D:4)
//	  + edge A-B (weight 1)
//	  visited: [A B]
//	  total:   1
//	...
//	Done: 4 vertices, 3 tree edges.
//	Total weight: 4
//
// Output is deterministic for a given graph: the underlying traversal is,
// and the frontier snapshot is sorted by weight with vertex ID as the
// tie-break. An optional pause callback runs after each step so a caller
// can single-step through the run (the CLI uses it to wait for Enter).
package simulate
