package simulate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/aaguirred/primtree/core"
	"github.com/aaguirred/primtree/mst"
)

// ErrNilGraph is returned by New when the graph argument is nil.
var ErrNilGraph = errors.New("simulate: nil graph")

// Option adjusts a Simulator before its first run.
type Option func(*Simulator)

// WithOutput redirects the narration. Default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Simulator) { s.out = w }
}

// WithPause installs a callback invoked after every printed step,
// typically to wait for user input between steps.
func WithPause(fn func()) Option {
	return func(s *Simulator) {
		if fn != nil {
			s.pause = fn
		}
	}
}

// WithForest makes disconnected graphs yield a spanning forest instead of
// an error; each component restart is announced in the narration.
func WithForest() Option {
	return func(s *Simulator) { s.forest = true }
}

// WithMethod selects the traversal strategy (mst.MethodPrim or
// mst.MethodKruskal). Default is Prim.
func WithMethod(method string) Option {
	return func(s *Simulator) { s.method = method }
}

// candidate is one frontier entry: the best known crossing edge to a
// not-yet-visited vertex.
type candidate struct {
	from   string
	weight float64
}

// Simulator runs an MST computation and narrates every step to a writer.
// A Simulator is single-use per Run call and not safe for concurrent use.
type Simulator struct {
	g      *core.Graph
	out    io.Writer
	pause  func()
	forest bool
	method string

	// per-run state
	step     int
	visited  map[string]struct{}
	frontier map[string]candidate
}

// New builds a Simulator for g. The graph must satisfy the same shape
// requirements as package mst (undirected, weighted); those are checked
// at Run time, not here.
func New(g *core.Graph, opts ...Option) (*Simulator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s := &Simulator{
		g:      g,
		out:    os.Stdout,
		pause:  func() {},
		method: mst.MethodPrim,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run computes the MST rooted at root and narrates each step. It returns
// the resulting tree, or an error from the underlying computation. An empty
// root lets the traversal pick the smallest vertex ID.
func (s *Simulator) Run(root string) (*mst.Tree, error) {
	s.step = 0
	s.visited = make(map[string]struct{})
	s.frontier = make(map[string]candidate)

	if s.method == mst.MethodKruskal {
		fmt.Fprintf(s.out, "Start %s\n", s.method)
	} else {
		fmt.Fprintf(s.out, "Start %s from: %s\n", s.method, s.displayRoot(root))
	}
	fmt.Fprintf(s.out, "Vertices: %d, edges: %d\n", s.g.VertexCount(), s.g.EdgeCount())

	opts := []mst.Option{
		mst.WithMethod(s.method),
		mst.WithRoot(root),
		mst.WithOnPick(s.onPick),
		mst.WithOnRelax(s.onRelax),
		mst.WithOnComponent(s.onComponent),
	}
	if s.forest {
		opts = append(opts, mst.WithForest())
	}

	tree, err := mst.Compute(s.g, opts...)
	if err != nil {
		fmt.Fprintf(s.out, "\nAborted: %v\n", err)
		return nil, err
	}

	s.printSummary(tree)
	return tree, nil
}

func (s *Simulator) displayRoot(root string) string {
	if root != "" {
		return root
	}
	if ids := s.g.Vertices(); len(ids) > 0 {
		return ids[0]
	}
	return "<empty>"
}

func (s *Simulator) onComponent(root string) {
	s.visited[root] = struct{}{}
	if s.step > 0 {
		fmt.Fprintf(s.out, "\nRestart: component rooted at %s\n", root)
	}
}

func (s *Simulator) onRelax(from, to string, weight float64, improved bool) {
	if improved {
		s.frontier[to] = candidate{from: from, weight: weight}
	}
}

func (s *Simulator) onPick(e core.Edge, total float64) {
	s.step++
	fmt.Fprintf(s.out, "\nStep %d\n", s.step)
	if s.method == mst.MethodPrim {
		fmt.Fprintf(s.out, "  frontier: %s\n", s.frontierLine())
	}
	fmt.Fprintf(s.out, "  + edge %s-%s (weight %s)\n", e.From, e.To, trimFloat(e.Weight))

	// Committed edges are oriented parent->child, so To is the new vertex.
	s.visited[e.To] = struct{}{}
	s.visited[e.From] = struct{}{}
	delete(s.frontier, e.To)

	fmt.Fprintf(s.out, "  visited: %v\n", s.visitedIDs())
	fmt.Fprintf(s.out, "  total:   %s\n", trimFloat(total))
	s.pause()
}

// frontierLine renders the current frontier sorted by weight, vertex ID as
// the tie-break, as "v(from-v:w)" entries.
func (s *Simulator) frontierLine() string {
	if len(s.frontier) == 0 {
		return "(empty)"
	}
	ids := make([]string, 0, len(s.frontier))
	for id := range s.frontier {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ci, cj := s.frontier[ids[i]], s.frontier[ids[j]]
		if ci.weight != cj.weight {
			return ci.weight < cj.weight
		}
		return ids[i] < ids[j]
	})
	line := ""
	for i, id := range ids {
		if i > 0 {
			line += " "
		}
		c := s.frontier[id]
		line += fmt.Sprintf("%s(%s-%s:%s)", id, c.from, id, trimFloat(c.weight))
	}
	return line
}

func (s *Simulator) visitedIDs() []string {
	ids := make([]string, 0, len(s.visited))
	for id := range s.visited {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Simulator) printSummary(tree *mst.Tree) {
	fmt.Fprintf(s.out, "\nDone: %d vertices, %d tree edges.\n",
		len(tree.Vertices()), tree.Len())
	if len(tree.Roots) > 1 {
		fmt.Fprintf(s.out, "Components: %d (roots %v)\n", len(tree.Roots), tree.Roots)
	}
	fmt.Fprintf(s.out, "Total weight: %s\n", trimFloat(tree.TotalWeight))
	if tree.Len() > 0 {
		fmt.Fprint(s.out, "Tree edges:")
		for _, e := range tree.Edges {
			fmt.Fprintf(s.out, " %s-%s", e.From, e.To)
		}
		fmt.Fprintln(s.out)
	}
}

// trimFloat renders weights the way they were written: integral values
// without a decimal part, everything else with minimal digits.
func trimFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}
