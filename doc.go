// Package primtree computes minimum spanning trees over weighted, undirected
// graphs, with a step-by-step simulator built for teaching how Prim's
// algorithm grows a tree from a root.
//
// The module is organized into focused subpackages:
//
//	core/     — thread-safe Graph, Vertex and Edge primitives
//	mst/      — Prim and Kruskal builders, the Tree result and its Path query
//	graphio/  — JSON graph documents: {"nodes": [...], "edges": [[u,v,w], ...]}
//	simulate/ — per-step narration of a computation via mst observation hooks
//	gen/      — deterministic topology generators for fixtures and benchmarks
//	cmd/      — the primtree CLI: run, interactive and version commands
//
// A minimal end-to-end use:
//
//	g := core.NewGraph(core.WithWeighted())
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	tree, err := mst.Prim(g, "A")
//
// Disconnected graphs fail with mst.ErrDisconnected by default; pass
// mst.WithForest() to span every component instead.
package primtree
