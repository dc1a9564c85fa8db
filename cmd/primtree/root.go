// Command primtree loads a weighted graph from a JSON document and narrates
// a minimum spanning tree computation step by step, in the manner of a
// classroom walkthrough of Prim's algorithm.
package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aaguirred/primtree/mst"
)

const envPrefix = "PRIMTREE"

// settings is the resolved flag/env configuration shared by the run and
// interactive commands.
type settings struct {
	graphPath string
	start     string
	target    string
	method    string
	forest    bool
	pause     bool
	quiet     bool
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "primtree",
		Short: "Step-by-step minimum spanning tree simulator",
		Long: `primtree computes minimum spanning trees over weighted, undirected
graphs loaded from JSON documents, narrating every step: the candidate
frontier, the committed edge, the visited set and the running total.

Every flag can also be set through the environment with the PRIMTREE_
prefix, e.g. PRIMTREE_GRAPH=maze.json primtree run.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringP("graph", "g", "example_graph.json", "path to the graph JSON document")
	pf.StringP("start", "s", "", "start vertex (default: first vertex in sorted order)")
	pf.StringP("target", "t", "", "optional target vertex; prints the tree path from start")
	pf.String("method", mst.MethodPrim, "algorithm: prim or kruskal")
	pf.Bool("forest", false, "span disconnected graphs as a forest instead of failing")
	pf.BoolP("pause", "p", false, "wait for Enter between steps")
	pf.BoolP("quiet", "q", false, "suppress step narration, print only the summary")

	cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()
		return v.BindPFlags(pf)
	}

	cmd.AddCommand(newRunCmd(v))
	cmd.AddCommand(newInteractiveCmd(v))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func loadSettings(v *viper.Viper) settings {
	return settings{
		graphPath: v.GetString("graph"),
		start:     v.GetString("start"),
		target:    v.GetString("target"),
		method:    v.GetString("method"),
		forest:    v.GetBool("forest"),
		pause:     v.GetBool("pause"),
		quiet:     v.GetBool("quiet"),
	}
}
