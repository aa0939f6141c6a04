package specs

import (
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/frontier"
)

// scheduleAdapter bundles a frontier.Schedule with the graph's edge
// list, the pair every spec family needs on every transition. Slot
// lookups panic instead of threading an error through a hot path that
// a correctly built Schedule never fails on for a vertex it itself
// reported as entering/leaving.
type scheduleAdapter struct {
	sched *frontier.Schedule
	edges []core.Edge
}

func newScheduleAdapter(g *core.Graph, sched *frontier.Schedule) scheduleAdapter {
	return scheduleAdapter{sched: sched, edges: g.Edges()}
}

func (a scheduleAdapter) mustSlot(v int) int {
	pos, err := a.sched.Slot(v)
	if err != nil {
		panic(err)
	}
	return pos
}

func (a scheduleAdapter) edge(edgeIndex int) core.Edge {
	return a.edges[edgeIndex]
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
