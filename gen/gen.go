package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/aaguirred/primtree/core"
)

// ErrTooFewVertices is returned when a topology needs more vertices than
// the caller asked for.
var ErrTooFewVertices = errors.New("gen: too few vertices")

// ErrBadDimension is returned by Grid for a non-positive row or column count.
var ErrBadDimension = errors.New("gen: grid dimensions must be positive")

// ErrNilConstructor is returned by Build when a constructor argument is nil.
var ErrNilConstructor = errors.New("gen: nil constructor")

const defaultSeed = 1

// Constructor applies one deterministic topology to g. Implementations
// validate parameters first, add vertices through cfg.idFn in ascending
// index order, and emit edges in a stable documented order.
type Constructor func(g *core.Graph, cfg config) error

// config is the resolved generator configuration shared by constructors.
type config struct {
	rng      *rand.Rand
	idFn     func(i int) string
	weightFn func(rng *rand.Rand) float64
}

// Option adjusts the generator configuration.
type Option func(*config)

// WithSeed fixes the random source. Fixtures built with the same seed,
// options and constructor order are identical.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithIDPrefix changes the vertex naming scheme to prefix plus a
// zero-padded index, e.g. WithIDPrefix("N") yields N00, N01, ...
func WithIDPrefix(prefix string) Option {
	return func(c *config) {
		c.idFn = func(i int) string { return fmt.Sprintf("%s%02d", prefix, i) }
	}
}

// WithWeightRange draws edge weights uniformly from [min, max) instead of
// the default [1, 10).
func WithWeightRange(min, max float64) Option {
	return func(c *config) {
		c.weightFn = func(rng *rand.Rand) float64 {
			return min + rng.Float64()*(max-min)
		}
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		rng:  rand.New(rand.NewSource(defaultSeed)),
		idFn: func(i int) string { return fmt.Sprintf("V%02d", i) },
		weightFn: func(rng *rand.Rand) float64 {
			return 1 + rng.Float64()*9
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Build creates a graph with the given core options, resolves the generator
// configuration, and applies every constructor in order. The first
// constructor error aborts the build; no partial cleanup is attempted.
func Build(gopts []core.GraphOption, opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("gen: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("gen: %w", err)
		}
	}
	return g, nil
}

// weight resolves one edge weight under the graph's weighting policy.
func weight(g *core.Graph, cfg config) float64 {
	if !g.Weighted() {
		return 0
	}
	return cfg.weightFn(cfg.rng)
}

// addVertices inserts vertices 0..n-1 through cfg.idFn.
func addVertices(g *core.Graph, cfg config, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.idFn(i)); err != nil {
			return err
		}
	}
	return nil
}
