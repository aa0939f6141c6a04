package specs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/frontier"
	"github.com/katalvlaran/lvlath/specs"
	"github.com/katalvlaran/lvlath/zdd"
)

// bowtieGraph builds two triangles sharing a single vertex:
// 1-2-3-1 and 3-4-5-3. Its only two elementary cycles are the two
// triangles, so a valid two-colouring must assign one triangle's edges
// entirely to colour 0 and the other's entirely to colour 1.
func bowtieGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddEdge("1", "2")
	require.NoError(t, err)
	_, err = g.AddEdge("2", "3")
	require.NoError(t, err)
	_, err = g.AddEdge("3", "1")
	require.NoError(t, err)
	_, err = g.AddEdge("3", "4")
	require.NoError(t, err)
	_, err = g.AddEdge("4", "5")
	require.NoError(t, err)
	_, err = g.AddEdge("5", "3")
	require.NoError(t, err)
	return g
}

func TestTwoColourCyclesOnBowtie(t *testing.T) {
	t.Parallel()

	g := bowtieGraph(t)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	dd, err := zdd.Build(specs.NewTwoColourCycles(g, sched))
	require.NoError(t, err)

	// Exactly two solutions: swap which triangle gets which colour.
	require.Equal(t, "2", dd.Cardinality().String())
}

func TestTwoColourCyclesRejectsSingleTriangle(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	_, err := g.AddEdge("1", "2")
	require.NoError(t, err)
	_, err = g.AddEdge("2", "3")
	require.NoError(t, err)
	_, err = g.AddEdge("3", "1")
	require.NoError(t, err)

	sched, err := frontier.Build(g)
	require.NoError(t, err)

	dd, err := zdd.Build(specs.NewTwoColourCycles(g, sched))
	require.NoError(t, err)

	// A single triangle cannot supply two edge-disjoint cycles.
	require.Equal(t, "0", dd.Cardinality().String())
}
