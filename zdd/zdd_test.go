package zdd_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/builder"
	"github.com/katalvlaran/lvlath/frontier"
	"github.com/katalvlaran/lvlath/specs"
	"github.com/katalvlaran/lvlath/zdd"
)

func buildCycleDiagram(t *testing.T, n int) *zdd.Diagram {
	t.Helper()

	g, err := builder.BuildGraph(nil, builder.Cycle(n))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	dd, err := zdd.Build(specs.NewSingleCycle(g, sched))
	require.NoError(t, err)
	return dd
}

func TestBuildCycleHasExactlyOneSolution(t *testing.T) {
	t.Parallel()

	// A cycle graph C_n has exactly one subgraph that is itself a
	// single cycle: all n edges.
	dd := buildCycleDiagram(t, 5)
	require.Equal(t, "1", dd.Cardinality().String())
}

func TestCardinalityZeroOnUnsatisfiable(t *testing.T) {
	t.Parallel()

	// A path graph contains no cycle at all, so the SingleCycle spec
	// should reject every subset and the ZDD should count zero.
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	dd, err := zdd.Build(specs.NewSingleCycle(g, sched))
	require.NoError(t, err)
	require.Equal(t, "0", dd.Cardinality().String())
}

func TestDumpDotProducesWellFormedGraph(t *testing.T) {
	t.Parallel()

	dd := buildCycleDiagram(t, 4)

	var sb strings.Builder
	require.NoError(t, dd.DumpDot(&sb))

	out := sb.String()
	require.True(t, strings.HasPrefix(out, "digraph ZDD {"))
	require.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), "}"))
	require.Contains(t, out, `0 [shape=box,label="0"]`)
	require.Contains(t, out, `1 [shape=box,label="1"]`)
}

func TestArityMismatchRejected(t *testing.T) {
	t.Parallel()

	_, err := zdd.Build(badAritySpec{})
	require.ErrorIs(t, err, zdd.ErrArityMismatch)
}

// badAritySpec is a minimal specs.Spec whose Arity is outside [2, 3],
// used only to exercise zdd.Build's validation path.
type badAritySpec struct{}

func (badAritySpec) ArrayWidth() int { return 1 }
func (badAritySpec) Arity() int      { return 5 }
func (badAritySpec) NumEdges() int   { return 1 }
func (badAritySpec) Init(scratch []int64) int {
	scratch[0] = 0
	return 1
}
func (badAritySpec) Transition(scratch []int64, level int, value int) int {
	return -1
}
