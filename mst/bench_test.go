package mst_test

import (
	"testing"

	"github.com/aaguirred/primtree/core"
	"github.com/aaguirred/primtree/gen"
	"github.com/aaguirred/primtree/mst"
)

func benchGraph(b *testing.B, n, extra int) *core.Graph {
	b.Helper()
	g, err := gen.Build(
		[]core.GraphOption{core.WithWeighted()},
		[]gen.Option{gen.WithSeed(42)},
		gen.RandomSparse(n, extra),
	)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

// BenchmarkPrim measures Prim on a random connected graph with 500 vertices,
// always rooted at "V00".
func BenchmarkPrim(b *testing.B) {
	g := benchGraph(b, 500, 1500) // pre-build graph once
	b.ResetTimer()                // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = mst.Prim(g, "V00")
	}
}

// BenchmarkKruskal measures Kruskal on the same 500-vertex random graph.
func BenchmarkKruskal(b *testing.B) {
	g := benchGraph(b, 500, 1500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mst.Kruskal(g)
	}
}

// BenchmarkPrim_Grid measures Prim on a 30x30 lattice, a worst case for the
// frontier because every interior vertex has degree four.
func BenchmarkPrim_Grid(b *testing.B) {
	g, err := gen.Build(
		[]core.GraphOption{core.WithWeighted()},
		[]gen.Option{gen.WithSeed(7)},
		gen.Grid(30, 30),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mst.Prim(g, "V00")
	}
}
