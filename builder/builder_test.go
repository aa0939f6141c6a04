package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/builder"
)

func TestCycle(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 5, g.EdgeCount())

	_, err = builder.BuildGraph(nil, builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestPath(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())

	_, err = builder.BuildGraph(nil, builder.Path(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestWheel(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Wheel(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())   // 4 rim + 1 hub
	require.Equal(t, 4+4, g.EdgeCount()) // ring + spokes

	_, err = builder.BuildGraph(nil, builder.Wheel(3))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestComplete(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 6, g.EdgeCount()) // C(4,2)
}

func TestGrid(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Grid(3, 3))
	require.NoError(t, err)
	require.Equal(t, 9, g.VertexCount())
	require.Equal(t, 12, g.EdgeCount()) // 2*3*2 interior connections

	_, err = builder.BuildGraph(nil, builder.Grid(0, 3))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSparse(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(nil, builder.RandomSparse(5, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(1)))},
		builder.RandomSparse(5, 0.5),
	)
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())

	g1, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(6, 1.0))
	require.NoError(t, err)
	require.Equal(t, 15, g1.EdgeCount()) // p=1 -> complete graph, no RNG consulted

	g0, err := builder.BuildGraph(nil, builder.RandomSparse(6, 0.0))
	require.NoError(t, err)
	require.Equal(t, 0, g0.EdgeCount())
}

func TestWithIDScheme(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithIDScheme(builder.SymbolNumberIDFn("v"))},
		builder.Path(3),
	)
	require.NoError(t, err)
	lbl, err := g.VertexLabel(1)
	require.NoError(t, err)
	require.Equal(t, "v0", lbl)
}

func TestBuildGraphNilConstructor(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(nil, nil)
	require.Error(t, err)

	_, err = builder.BuildGraph(nil, builder.Cycle(3), nil)
	require.Error(t, err)
	require.False(t, errors.Is(err, builder.ErrTooFewVertices))
}
