package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaguirred/primtree/core"
	"github.com/aaguirred/primtree/graphio"
	"github.com/aaguirred/primtree/mst"
)

// writeDiamond writes the A-B-C-D diamond graph (MST total 4) to a temp file.
func writeDiamond(t *testing.T) string {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 1}, {"B", "C", 2}, {"C", "D", 1}, {"A", "D", 4}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	path := filepath.Join(t.TempDir(), "diamond.json")
	require.NoError(t, graphio.WriteFile(path, g))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunCommand_Quiet(t *testing.T) {
	path := writeDiamond(t)
	out, err := execute(t, "", "run", "--graph", path, "--quiet", "--start", "A")
	require.NoError(t, err)
	assert.Contains(t, out, "Using graph: "+path)
	assert.Contains(t, out, "Total weight: 4\n")
	assert.Contains(t, out, "Tree edges: A-B B-C C-D\n")
	assert.NotContains(t, out, "Step 1")
}

func TestRunCommand_NarratesSteps(t *testing.T) {
	path := writeDiamond(t)
	out, err := execute(t, "", "run", "-g", path, "-s", "A")
	require.NoError(t, err)
	assert.Contains(t, out, "Step 1")
	assert.Contains(t, out, "frontier: B(A-B:1) D(A-D:4)")
	assert.Contains(t, out, "Total weight: 4\n")
}

func TestRunCommand_TargetPath(t *testing.T) {
	path := writeDiamond(t)
	out, err := execute(t, "", "run", "-g", path, "-s", "A", "-t", "D", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "Path in tree from A to D: [A B C D]\n")
	assert.Contains(t, out, "Path weight: 4\n")
}

func TestRunCommand_GraphFromEnv(t *testing.T) {
	path := writeDiamond(t)
	t.Setenv("PRIMTREE_GRAPH", path)
	out, err := execute(t, "", "run", "--quiet", "-s", "A")
	require.NoError(t, err)
	assert.Contains(t, out, "Total weight: 4\n")
}

func TestRunCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "", "run", "--graph", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load graph")
}

func TestRunCommand_UnknownMethod(t *testing.T) {
	path := writeDiamond(t)
	_, err := execute(t, "", "run", "-g", path, "--method", "boruvka")
	require.ErrorIs(t, err, mst.ErrUnknownMethod)
}

func TestInteractiveCommand(t *testing.T) {
	path := writeDiamond(t)
	// invalid start first, then a valid one, then skip the target
	stdin := "Z\nA\n\n"
	out, err := execute(t, stdin, "interactive", "--graph", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Graph edges:")
	assert.Contains(t, out, "A - B (weight 1)")
	assert.Contains(t, out, "Vertex not found. Try again.")
	assert.Contains(t, out, "Start: A\n")
	assert.Contains(t, out, "Total weight: 4\n")
}

func TestInteractiveCommand_WithTarget(t *testing.T) {
	path := writeDiamond(t)
	out, err := execute(t, "A\nD\n", "interactive", "--graph", path, "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "Target: D\n")
	assert.Contains(t, out, "Path in tree from A to D: [A B C D]\n")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "primtree:\n Version: development build\n")
}
