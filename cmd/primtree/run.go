package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aaguirred/primtree/core"
	"github.com/aaguirred/primtree/graphio"
	"github.com/aaguirred/primtree/simulate"
)

func newRunCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Load a graph and compute its minimum spanning tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadSettings(v)
			g, err := loadGraph(cfg.graphPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Using graph: %s\n\n", cfg.graphPath)
			return runSimulation(cmd, g, cfg)
		},
	}
}

func loadGraph(path string) (*core.Graph, error) {
	g, err := graphio.ParseFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load graph %s", path)
	}
	return g, nil
}

// runSimulation drives one simulator pass with the resolved settings and,
// when a target vertex is set, prints the path to it inside the tree.
func runSimulation(cmd *cobra.Command, g *core.Graph, cfg settings) error {
	out := cmd.OutOrStdout()

	opts := []simulate.Option{simulate.WithMethod(cfg.method)}
	if cfg.quiet {
		opts = append(opts, simulate.WithOutput(io.Discard))
	} else {
		opts = append(opts, simulate.WithOutput(out))
	}
	if cfg.forest {
		opts = append(opts, simulate.WithForest())
	}
	if cfg.pause && !cfg.quiet {
		in := bufio.NewReader(cmd.InOrStdin())
		opts = append(opts, simulate.WithPause(func() {
			fmt.Fprint(out, "  -- Enter to continue --\n")
			_, _ = in.ReadString('\n')
		}))
	}

	sim, err := simulate.New(g, opts...)
	if err != nil {
		return err
	}
	tree, err := sim.Run(cfg.start)
	if err != nil {
		return err
	}

	if cfg.quiet {
		fmt.Fprintf(out, "Total weight: %g\n", tree.TotalWeight)
		fmt.Fprint(out, "Tree edges:")
		for _, e := range tree.Edges {
			fmt.Fprintf(out, " %s-%s", e.From, e.To)
		}
		fmt.Fprintln(out)
	}

	if cfg.target != "" {
		start := cfg.start
		if start == "" {
			if ids := g.Vertices(); len(ids) > 0 {
				start = ids[0]
			}
		}
		path, weight, err := tree.Path(start, cfg.target)
		if err != nil {
			return errors.Wrapf(err, "path %s to %s", start, cfg.target)
		}
		fmt.Fprintf(out, "Path in tree from %s to %s: %v\n", start, cfg.target, path)
		fmt.Fprintf(out, "Path weight: %g\n", weight)
	}
	return nil
}
