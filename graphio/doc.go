// Package graphio reads and writes weighted undirected graphs as JSON
// documents of the form
//
//	{
//	  "nodes": ["A", "B", "C"],
//	  "edges": [["A", "B", 1.5], ["B", "C", 2]]
//	}
//
// Each edge entry is a [from, to, weight] triple; from and to are strings and
// weight is a finite number. Nodes referenced only by edges are added to the
// graph implicitly, so the "nodes" list is needed only for isolated vertices.
//
// Parse builds a *core.Graph (weighted, undirected); Write emits the
// canonical document with nodes and edges sorted, suitable for fixtures and
// round-tripping.
package graphio
