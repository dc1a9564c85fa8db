package mst_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaguirred/primtree/core"
	"github.com/aaguirred/primtree/mst"
)

// buildDiamond constructs the four-vertex reference graph
//
//	A—B (1), B—C (2), C—D (1), A—D (4), B—D (3)
//
// whose MST from any root has 3 edges and total weight 4.
func buildDiamond() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "D", 1)
	_, _ = g.AddEdge("A", "D", 4)
	_, _ = g.AddEdge("B", "D", 3)

	return g
}

// buildTwoComponents constructs two disjoint edges: A—B (1) and C—D (2).
func buildTwoComponents() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "D", 2)

	return g
}

// buildRandomConnected creates a connected weighted graph with n vertices and
// edgesCount total edges: a random-weight chain for connectivity plus random
// extra edges. Seeded deterministically for reproducibility.
func buildRandomConnected(n, edgesCount int) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprintf("V%02d", i))
	}
	r := rand.New(rand.NewSource(42))

	for i := 1; i < n; i++ {
		w := 1.0 + r.Float64()*9
		_, _ = g.AddEdge(fmt.Sprintf("V%02d", i-1), fmt.Sprintf("V%02d", i), w)
	}
	for added := 0; added < edgesCount-(n-1); {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		w := 1.0 + r.Float64()*99
		if _, err := g.AddEdge(fmt.Sprintf("V%02d", u), fmt.Sprintf("V%02d", v), w); err == nil {
			added++
		}
	}

	return g
}

// edgeSet normalizes tree edges to "u-v" with u < v for set comparisons.
func edgeSet(t *mst.Tree) map[string]bool {
	out := make(map[string]bool, len(t.Edges))
	for _, e := range t.Edges {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		out[fmt.Sprintf("%s-%s", u, v)] = true
	}

	return out
}

// assertSpanningTree checks the structural tree properties: |V|−1 edges per
// component, full vertex coverage, and no cycles (union-find sweep).
func assertSpanningTree(t *testing.T, g *core.Graph, tree *mst.Tree) {
	t.Helper()
	ids := g.Vertices()
	require.Len(t, tree.Edges, len(ids)-len(tree.Roots))
	assert.Equal(t, ids, tree.Vertices())

	parent := make(map[string]string, len(ids))
	for _, id := range ids {
		parent[id] = id
	}
	var find func(string) string
	find = func(u string) string {
		if parent[u] != u {
			parent[u] = find(parent[u])
		}
		return parent[u]
	}
	var sum float64
	for _, e := range tree.Edges {
		ru, rv := find(e.From), find(e.To)
		require.NotEqual(t, ru, rv, "edge %s-%s closes a cycle", e.From, e.To)
		parent[ru] = rv
		sum += e.Weight
	}
	assert.InDelta(t, sum, tree.TotalWeight, 1e-9)
}

func TestPrim_Diamond(t *testing.T) {
	tree, err := mst.Prim(buildDiamond(), "A")
	require.NoError(t, err)

	assert.InDelta(t, 4.0, tree.TotalWeight, 1e-9)
	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, []string{"A"}, tree.Roots)

	set := edgeSet(tree)
	assert.True(t, set["A-B"], "edge A-B must be in MST")
	assert.True(t, set["B-C"], "edge B-C must be in MST")
	assert.True(t, set["C-D"], "edge C-D must be in MST")
	assertSpanningTree(t, buildDiamond(), tree)
}

func TestKruskal_Diamond(t *testing.T) {
	tree, err := mst.Kruskal(buildDiamond())
	require.NoError(t, err)

	assert.InDelta(t, 4.0, tree.TotalWeight, 1e-9)
	assert.Equal(t, 3, tree.Len())
	set := edgeSet(tree)
	assert.True(t, set["A-B"] && set["B-C"] && set["C-D"])
}

// TestPrim_RootIndependence verifies the minimal total weight is the same
// from every possible root.
func TestPrim_RootIndependence(t *testing.T) {
	g := buildDiamond()
	for _, root := range g.Vertices() {
		tree, err := mst.Prim(g, root)
		require.NoError(t, err, "root %s", root)
		assert.InDelta(t, 4.0, tree.TotalWeight, 1e-9, "root %s", root)
		assert.Equal(t, []string{root}, tree.Roots)
	}
}

// TestPrim_Deterministic verifies that repeated runs discover the identical
// edge sequence, the documented tie-break guarantee.
func TestPrim_Deterministic(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	// All weights equal: only the tie-break decides the shape.
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "D", 1)
	_, _ = g.AddEdge("B", "D", 1)

	first, err := mst.Prim(g, "A")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := mst.Prim(g, "A")
		require.NoError(t, err)
		assert.Equal(t, first.Edges, again.Edges)
	}
	// First-improvement on ties: A's edges are examined in insertion order.
	set := edgeSet(first)
	assert.True(t, set["A-B"] && set["A-C"], "ties resolve to the edges discovered first")
}

func TestValidation_InvalidGraphs(t *testing.T) {
	// nil graph
	_, err := mst.Prim(nil, "A")
	assert.ErrorIs(t, err, mst.ErrInvalidGraph)
	_, err = mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrInvalidGraph)

	// unweighted graph
	_, err = mst.Prim(core.NewGraph(), "A")
	assert.ErrorIs(t, err, mst.ErrInvalidGraph)

	// directed graph
	gDir := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = gDir.AddEdge("A", "B", 1)
	_, err = mst.Prim(gDir, "A")
	assert.ErrorIs(t, err, mst.ErrInvalidGraph)
	_, err = mst.Kruskal(gDir)
	assert.ErrorIs(t, err, mst.ErrInvalidGraph)
}

func TestValidation_Root(t *testing.T) {
	g := buildDiamond()

	_, err := mst.Prim(g, "")
	assert.ErrorIs(t, err, mst.ErrEmptyRoot)

	// An unknown start vertex fails explicitly, never a silent empty result.
	_, err = mst.Prim(g, "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Contains(t, err.Error(), "Z")
}

func TestEmptyGraph(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	_, err := mst.Prim(g, "A")
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	_, err = mst.Kruskal(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestSingleVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("X"))

	tree, err := mst.Prim(g, "X")
	require.NoError(t, err)
	assert.Empty(t, tree.Edges)
	assert.Zero(t, tree.TotalWeight)
	assert.Equal(t, []string{"X"}, tree.Roots)

	tree, err = mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, tree.Edges)
	assert.Zero(t, tree.TotalWeight)
}

// TestDisconnected_ErrorPolicy: the default policy fails explicitly and
// names every unreachable vertex.
func TestDisconnected_ErrorPolicy(t *testing.T) {
	g := buildTwoComponents()

	_, err := mst.Prim(g, "A")
	require.ErrorIs(t, err, mst.ErrDisconnected)
	assert.Contains(t, err.Error(), "C")
	assert.Contains(t, err.Error(), "D")

	_, err = mst.Kruskal(g)
	require.ErrorIs(t, err, mst.ErrDisconnected)
	assert.Contains(t, err.Error(), "C")

	// Isolated vertices count as unreachable too.
	iso := core.NewGraph(core.WithWeighted())
	_ = iso.AddVertex("A")
	_ = iso.AddVertex("B")
	_, err = mst.Prim(iso, "A")
	require.ErrorIs(t, err, mst.ErrDisconnected)
	assert.Contains(t, err.Error(), "B")
}

// TestDisconnected_ForestPolicy: WithForest spans every component, one tree
// per component, restarting from the smallest unvisited vertex.
func TestDisconnected_ForestPolicy(t *testing.T) {
	g := buildTwoComponents()

	tree, err := mst.Prim(g, "A", mst.WithForest())
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Len())
	assert.InDelta(t, 3.0, tree.TotalWeight, 1e-9)
	assert.Equal(t, []string{"A", "C"}, tree.Roots)
	assertSpanningTree(t, g, tree)

	tree, err = mst.Kruskal(g, mst.WithForest())
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Len())
	assert.InDelta(t, 3.0, tree.TotalWeight, 1e-9)
	assert.Equal(t, []string{"A", "C"}, tree.Roots)
}

// TestParallelEdges verifies that the lighter of two parallel edges is
// selected by both builders.
func TestParallelEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", 5)
	_, _ = g.AddEdge("A", "B", 1)

	tree, err := mst.Prim(g, "A")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, tree.TotalWeight, 1e-9)
	assert.Equal(t, 1, tree.Len())

	tree, err = mst.Kruskal(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, tree.TotalWeight, 1e-9)
}

// TestSelfLoopsIgnored verifies self-loops never enter a tree.
func TestSelfLoopsIgnored(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, _ = g.AddEdge("A", "A", 0.5)
	_, _ = g.AddEdge("A", "B", 2)

	tree, err := mst.Prim(g, "A")
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Len())
	assert.InDelta(t, 2.0, tree.TotalWeight, 1e-9)
}

// TestNegativeWeights: correctness does not depend on non-negativity.
func TestNegativeWeights(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", -3)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", -1)

	tree, err := mst.Prim(g, "A")
	require.NoError(t, err)
	assert.InDelta(t, -4.0, tree.TotalWeight, 1e-9)
	set := edgeSet(tree)
	assert.True(t, set["A-B"] && set["A-C"])
}

// TestOptimality_PrimMatchesKruskal cross-checks both builders on random
// connected graphs: identical minimal totals, valid spanning trees.
func TestOptimality_PrimMatchesKruskal(t *testing.T) {
	for _, tc := range []struct{ n, edges int }{
		{10, 20},
		{50, 120},
		{100, 300},
	} {
		g := buildRandomConnected(tc.n, tc.edges)

		treeP, err := mst.Prim(g, "V00")
		require.NoError(t, err)
		treeK, err := mst.Kruskal(g)
		require.NoError(t, err)

		require.Len(t, treeP.Edges, tc.n-1)
		require.Len(t, treeK.Edges, tc.n-1)
		assert.InDelta(t, treeK.TotalWeight, treeP.TotalWeight, 1e-9)
		assertSpanningTree(t, g, treeP)
		assertSpanningTree(t, g, treeK)
	}
}

// TestCompute_Dispatch covers method selection and the default root.
func TestCompute_Dispatch(t *testing.T) {
	g := buildDiamond()

	// Default: Prim from the first sorted vertex.
	tree, err := mst.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, tree.Roots)
	assert.InDelta(t, 4.0, tree.TotalWeight, 1e-9)

	tree, err = mst.Compute(g, mst.WithRoot("C"))
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, tree.Roots)

	tree, err = mst.Compute(g, mst.WithMethod(mst.MethodKruskal))
	require.NoError(t, err)
	assert.InDelta(t, 4.0, tree.TotalWeight, 1e-9)

	_, err = mst.Compute(g, mst.WithMethod("boruvka"))
	assert.ErrorIs(t, err, mst.ErrUnknownMethod)
}

// TestHooks verifies the observation callbacks fire in growth order.
func TestHooks(t *testing.T) {
	g := buildTwoComponents()

	var picks []string
	var components []string
	relaxed := 0
	tree, err := mst.Prim(g, "A",
		mst.WithForest(),
		mst.WithOnPick(func(e core.Edge, total float64) {
			picks = append(picks, fmt.Sprintf("%s-%s@%.0f", e.From, e.To, total))
		}),
		mst.WithOnRelax(func(from, to string, w float64, improved bool) {
			relaxed++
		}),
		mst.WithOnComponent(func(root string) {
			components = append(components, root)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, []string{"A-B@1", "C-D@3"}, picks)
	assert.Equal(t, []string{"A", "C"}, components)
	assert.Equal(t, 2, relaxed) // one improving relaxation per committed edge
}
