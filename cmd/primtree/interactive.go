package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aaguirred/primtree/core"
)

func newInteractiveCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Pick a graph file and vertices interactively, then simulate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadSettings(v)
			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			path, err := chooseGraph(in, out, cfg.graphPath)
			if err != nil {
				return err
			}
			g, err := loadGraph(path)
			if err != nil {
				return err
			}
			previewGraph(out, g)

			cfg.start = promptStart(in, out, g)
			cfg.target = promptTarget(in, out, g)

			fmt.Fprintf(out, "\nLoading graph: %s\n", path)
			fmt.Fprintf(out, "Start: %s\n", cfg.start)
			if cfg.target != "" {
				fmt.Fprintf(out, "Target: %s\n", cfg.target)
			}
			fmt.Fprintln(out)

			return runSimulation(cmd, g, cfg)
		},
	}
}

// chooseGraph resolves the graph file: the --graph flag when it points at an
// existing file, otherwise a numbered menu over *.json in the current
// directory. A non-numeric answer is taken as a literal path.
func chooseGraph(in *bufio.Scanner, out io.Writer, flagPath string) (string, error) {
	if flagPath != "" {
		if _, err := os.Stat(flagPath); err == nil {
			return flagPath, nil
		}
	}

	files, err := filepath.Glob("*.json")
	if err != nil {
		return "", errors.Wrap(err, "scan for graph files")
	}
	if len(files) == 0 {
		return "", errors.New("no .json graph files found in the current directory")
	}
	sort.Strings(files)

	fmt.Fprintln(out, "Available graphs:")
	for i, f := range files {
		fmt.Fprintf(out, "  %d) %s\n", i+1, f)
	}
	fmt.Fprint(out, "Choose a graph by number (or type a path): ")
	if !in.Scan() {
		return "", errors.New("no selection read")
	}
	sel := strings.TrimSpace(in.Text())
	if n, err := strconv.Atoi(sel); err == nil {
		if n < 1 || n > len(files) {
			return "", errors.Errorf("invalid selection %d", n)
		}
		return files[n-1], nil
	}
	return sel, nil
}

// previewGraph lists the edges and vertices before asking for input, so the
// user picks from what the graph actually contains.
func previewGraph(out io.Writer, g *core.Graph) {
	fmt.Fprintln(out, "\nGraph edges:")
	for _, e := range g.Edges() {
		fmt.Fprintf(out, "  %s - %s (weight %g)\n", e.From, e.To, e.Weight)
	}
	fmt.Fprintln(out, "\nAvailable vertices:")
	fmt.Fprintln(out, strings.Join(g.Vertices(), ", "))
}

func promptStart(in *bufio.Scanner, out io.Writer, g *core.Graph) string {
	for {
		fmt.Fprint(out, "Start vertex: ")
		if !in.Scan() {
			return ""
		}
		id := strings.TrimSpace(in.Text())
		if g.HasVertex(id) {
			return id
		}
		fmt.Fprintln(out, "Vertex not found. Try again.")
	}
}

func promptTarget(in *bufio.Scanner, out io.Writer, g *core.Graph) string {
	fmt.Fprint(out, "Target vertex (optional, Enter to skip): ")
	if !in.Scan() {
		return ""
	}
	id := strings.TrimSpace(in.Text())
	if id == "" {
		return ""
	}
	if !g.HasVertex(id) {
		fmt.Fprintln(out, "Target vertex not found; skipping the path lookup.")
		return ""
	}
	return id
}
