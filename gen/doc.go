// Package gen builds deterministic graph fixtures for tests, benchmarks and
// demos: classic topologies (path, cycle, complete, grid) plus a connected
// random-sparse generator.
//
// Construction is composed from Constructor closures applied in order by
// Build. The same options, seed and constructor order always produce an
// identical graph, so fixtures are reproducible across runs.
//
//	g, err := gen.Build(
//		[]core.GraphOption{core.WithWeighted()},
//		[]gen.Option{gen.WithSeed(42)},
//		gen.RandomSparse(100, 200),
//	)
//
// Constructors validate their parameters early and return sentinel errors;
// they never panic.
package gen
