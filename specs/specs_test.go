package specs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/builder"
	"github.com/katalvlaran/lvlath/frontier"
	"github.com/katalvlaran/lvlath/specs"
	"github.com/katalvlaran/lvlath/zdd"
)

func TestSingleCycleGrids(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n    int
		want string
	}{
		{3, "13"},
		{4, "213"},
		{5, "9349"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.want, func(t *testing.T) {
			t.Parallel()

			g, err := builder.BuildGraph(nil, builder.Grid(tc.n, tc.n))
			require.NoError(t, err)
			sched, err := frontier.Build(g)
			require.NoError(t, err)

			spec := specs.NewSingleCycle(g, sched)
			dd, err := zdd.Build(spec)
			require.NoError(t, err)
			require.Equal(t, tc.want, dd.Cardinality().String())
		})
	}
}

func TestHamCycleK4(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	spec := specs.NewHamCycle(g, sched)
	dd, err := zdd.Build(spec)
	require.NoError(t, err)
	require.Equal(t, "3", dd.Cardinality().String())
}

func TestSTPathOnPath(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	spec, err := specs.NewSTPath(g, sched, 1, 4, false)
	require.NoError(t, err)
	dd, err := zdd.Build(spec)
	require.NoError(t, err)
	require.Equal(t, "1", dd.Cardinality().String())
}

func TestPerfectMatchingK4(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	spec := specs.NewMatching(g, sched, true)
	dd, err := zdd.Build(spec)
	require.NoError(t, err)
	require.Equal(t, "3", dd.Cardinality().String())
}

func TestSpanningTreeK4(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	spec := specs.NewTree(g, sched, true)
	dd, err := zdd.Build(spec)
	require.NoError(t, err)
	require.Equal(t, "16", dd.Cardinality().String())
}

func TestTreeNonSpanningAcceptsATreeWithIsolatedVertices(t *testing.T) {
	t.Parallel()

	// Path 1-2-3-4, take only edge (2,3): a valid tree on {2,3} with
	// vertices 1 and 4 left isolated-but-live. A correct non-spanning
	// Tree must accept this even though other frontier vertices are
	// still live, since they were never touched by a taken edge.
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	dd, err := zdd.Build(specs.NewTree(g, sched, false))
	require.NoError(t, err)

	found := false
	for _, take := range acceptedTakeVectors(dd) {
		if len(take) == 3 && !take[0] && take[1] && !take[2] {
			found = true
			break
		}
	}
	require.True(t, found, "Tree(non-spanning) should accept taking only edge (2,3) on path 1-2-3-4")
}

func TestMateCycleAgreesWithDegCompSingleCycle(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Grid(4, 4))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	ddDegComp, err := zdd.Build(specs.NewSingleCycle(g, sched))
	require.NoError(t, err)
	ddMate, err := zdd.Build(specs.NewMateCycle(g, sched, false))
	require.NoError(t, err)

	require.Equal(t, ddDegComp.Cardinality().String(), ddMate.Cardinality().String())
}

func TestMateCycleAgreesWithDegCompHamCycle(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	ddDegComp, err := zdd.Build(specs.NewHamCycle(g, sched))
	require.NoError(t, err)
	ddMate, err := zdd.Build(specs.NewMateCycle(g, sched, true))
	require.NoError(t, err)

	require.Equal(t, ddDegComp.Cardinality().String(), ddMate.Cardinality().String())
}

func TestMateCycleHamiltonianRejectsTriangleWithIsolatedVertex(t *testing.T) {
	t.Parallel()

	// K4 edges in lexicographic order: (1,2) (1,3) (1,4) (2,3) (2,4) (3,4).
	// Taking only the triangle on {1,2,3} closes a 3-cycle while vertex 4
	// stays isolated and live; a Hamiltonian cycle spec must reject this.
	g, err := builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	dd, err := zdd.Build(specs.NewMateCycle(g, sched, true))
	require.NoError(t, err)

	triangle := []bool{true, true, false, true, false, false}
	for _, take := range acceptedTakeVectors(dd) {
		require.NotEqual(t, triangle, take, "MateCycle(hamiltonian) must not accept a triangle leaving a vertex isolated")
	}
	require.Equal(t, "3", dd.Cardinality().String())
}

func TestForestRejectsNothingOnATree(t *testing.T) {
	t.Parallel()

	// Any subset of a tree's edges is itself a forest, so the count
	// must be exactly 2^m.
	g, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	spec := specs.NewForest(g, sched)
	dd, err := zdd.Build(spec)
	require.NoError(t, err)
	require.Equal(t, "16", dd.Cardinality().String()) // 2^4
}

func TestDegreeSpecifiedLetterIPreset(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	ranges := []specs.DegreeRange{
		{},
		{Lo: 0, Hi: specs.UnboundedDegree},
		{Lo: 2, Hi: 2},
		{Lo: 0, Hi: specs.UnboundedDegree},
	}
	spec, err := specs.NewDegreeSpecified(g, sched, ranges)
	require.NoError(t, err)
	dd, err := zdd.Build(spec)
	require.NoError(t, err)

	// Only the full edge set gives the middle vertex degree 2.
	require.Equal(t, "1", dd.Cardinality().String())
}

func TestDegreeSpecifiedRejectsWrongRangeCount(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	_, err = specs.NewDegreeSpecified(g, sched, []specs.DegreeRange{{}, {}})
	require.Error(t, err)
}
