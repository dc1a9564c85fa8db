// Package mst: configuration options, sentinel errors, and the Compute
// dispatcher shared by the Prim and Kruskal builders.
package mst

import (
	"errors"

	"github.com/aaguirred/primtree/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected,
// weighted graph. Returned when the graph is nil, unweighted, directed, or
// contains any directed edge.
var ErrInvalidGraph = errors.New("mst: requires undirected, weighted graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("mst: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so under
// the default (error) policy no spanning tree covering all vertices exists.
// The returned error wraps this sentinel together with the sorted list of
// unreachable vertex IDs.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// ErrUnknownMethod indicates an unrecognized Options.Method passed to Compute.
var ErrUnknownMethod = errors.New("mst: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using an indexed min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Options configures MST construction. Use DefaultOptions for the defaults
// and the With* functional options to override them.
type Options struct {
	// Method selects the builder: MethodPrim (default) or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim. When empty, Compute falls back to
	// the first vertex in sorted order. Ignored by Kruskal.
	Root string

	// Forest switches the disconnected-graph policy from error to forest:
	// growth restarts per component and the result spans every component.
	Forest bool

	// OnPick fires after an edge is committed to the result, with the running
	// total weight.
	OnPick func(e core.Edge, total float64)

	// OnRelax fires for every crossing edge examined during Prim's neighbor
	// relaxation. improved reports whether the edge lowered the frontier key
	// of its far endpoint. Never fired by Kruskal.
	OnRelax func(from, to string, weight float64, improved bool)

	// OnComponent fires when growth (re)starts from a component root: once
	// for the initial root and once per forest-mode restart.
	OnComponent func(root string)
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options initialized for Prim with the error policy
// and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Method:      MethodPrim,
		Root:        "",
		Forest:      false,
		OnPick:      func(core.Edge, float64) {},
		OnRelax:     func(string, string, float64, bool) {},
		OnComponent: func(string) {},
	}
}

// WithMethod sets the algorithm Method: MethodPrim or MethodKruskal.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets the starting vertex for Prim. Ignored by Kruskal.
func WithRoot(root string) Option {
	return func(o *Options) { o.Root = root }
}

// WithForest selects the forest policy for disconnected graphs: instead of
// failing with ErrDisconnected, the result spans every connected component.
func WithForest() Option {
	return func(o *Options) { o.Forest = true }
}

// WithOnPick registers a callback fired for every edge added to the result.
func WithOnPick(fn func(e core.Edge, total float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPick = fn
		}
	}
}

// WithOnRelax registers a callback fired for every crossing edge examined by
// Prim's relaxation step.
func WithOnRelax(fn func(from, to string, weight float64, improved bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnComponent registers a callback fired when growth starts from a new
// component root.
func WithOnComponent(fn func(root string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnComponent = fn
		}
	}
}

// Compute selects and runs the MST builder based on Options.Method:
//
//   - MethodPrim (default): Prim(g, root) where root is Options.Root, falling
//     back to the first vertex in sorted order when unset.
//   - MethodKruskal: Kruskal(g).
//
// Returns ErrUnknownMethod for anything else.
func Compute(g *core.Graph, opts ...Option) (*Tree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodPrim:
		root := cfg.Root
		if root == "" && g != nil {
			// Original simulator behavior: default to the first vertex.
			if ids := g.Vertices(); len(ids) > 0 {
				root = ids[0]
			}
		}

		return runPrim(g, root, cfg)
	case MethodKruskal:
		return runKruskal(g, cfg)
	default:
		return nil, ErrUnknownMethod
	}
}
