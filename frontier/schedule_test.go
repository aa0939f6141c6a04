package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/builder"
	"github.com/katalvlaran/lvlath/frontier"
)

func TestBuildPath(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)

	sched, err := frontier.Build(g)
	require.NoError(t, err)

	require.Equal(t, 3, sched.NumEdges())
	require.Equal(t, 2, sched.MaxWidth())

	require.Equal(t, []int{1, 2}, sched.Entering(0))
	require.Equal(t, []int{3}, sched.Entering(1))
	require.Equal(t, []int{4}, sched.Entering(2))

	require.Equal(t, []int{1}, sched.Leaving(0))
	require.Equal(t, []int{2}, sched.Leaving(1))
	require.Equal(t, []int{3, 4}, sched.Leaving(2))

	require.Equal(t, []int{1, 2}, sched.Frontier(0))
	require.Equal(t, []int{2, 3}, sched.Frontier(1))
	require.Equal(t, []int{3, 4}, sched.Frontier(2))
}

func TestSlotReuse(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)

	sched, err := frontier.Build(g)
	require.NoError(t, err)

	seen := map[int]bool{}
	for i := 0; i < sched.NumEdges(); i++ {
		for _, v := range sched.Frontier(i) {
			pos, err := sched.Slot(v)
			require.NoError(t, err)
			require.GreaterOrEqual(t, pos, 0)
			require.Less(t, pos, sched.MaxWidth())
			seen[v] = true
		}
	}
	require.Equal(t, 4, len(seen))

	_, err = sched.Slot(0)
	require.Error(t, err)
	_, err = sched.Slot(99)
	require.Error(t, err)
}

func TestBuildEmptyGraph(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil)
	require.NoError(t, err)

	_, err = frontier.Build(g)
	require.ErrorIs(t, err, frontier.ErrEmptyGraph)
}

func TestBuildGridWidth(t *testing.T) {
	t.Parallel()

	// A 3x3 grid's edge order (row-major, right-then-down per cell) has
	// frontier width that never exceeds min(rows,cols)+1.
	g, err := builder.BuildGraph(nil, builder.Grid(3, 3))
	require.NoError(t, err)

	sched, err := frontier.Build(g)
	require.NoError(t, err)
	require.LessOrEqual(t, sched.MaxWidth(), 4)
}
