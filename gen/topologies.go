package gen

import (
	"fmt"

	"github.com/aaguirred/primtree/core"
)

// Path builds a simple path P_n: V00-V01-...-V(n-1), n >= 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("path: n=%d: %w", n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn(i+1), weight(g, cfg)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle builds a simple cycle C_n, n >= 3. Edges are emitted in ascending
// index order, closing the ring with (n-1)->0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 3 {
			return fmt.Errorf("cycle: n=%d: %w", n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%n), weight(g, cfg)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete builds the complete graph K_n, n >= 2.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("complete: n=%d: %w", n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn(j), weight(g, cfg)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Grid builds a rows x cols lattice with 4-neighborhood connectivity.
// Vertex index is row-major: i = r*cols + c.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("grid: %dx%d: %w", rows, cols, ErrBadDimension)
		}
		if err := addVertices(g, cfg, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn(i+1), weight(g, cfg)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn(i+cols), weight(g, cfg)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// RandomSparse builds a connected graph on n vertices: a random spanning
// tree (vertex i attaches to a random earlier vertex) plus up to extra
// additional edges between distinct, not yet adjacent vertices. Connectivity
// is guaranteed; the exact extra-edge count may fall short on dense requests
// because duplicates are skipped.
func RandomSparse(n, extra int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("random sparse: n=%d: %w", n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			parent := cfg.rng.Intn(i)
			if _, err := g.AddEdge(cfg.idFn(parent), cfg.idFn(i), weight(g, cfg)); err != nil {
				return err
			}
		}
		// Retries are bounded so a near-complete request terminates.
		attempts := extra * 4
		added := 0
		for added < extra && attempts > 0 {
			attempts--
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v || g.HasEdge(cfg.idFn(u), cfg.idFn(v)) {
				continue
			}
			if _, err := g.AddEdge(cfg.idFn(u), cfg.idFn(v), weight(g, cfg)); err != nil {
				return err
			}
			added++
		}
		return nil
	}
}
