package specs

import (
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/frontier"
)

// Forest counts/enumerates edge subsets containing no cycle: any
// collection of disjoint trees over any subset of vertices. Grounded on
// FrontierForestSpec: each frontier slot holds only a component id
// (comp==0 is the erased/unused sentinel); taking an edge whose
// endpoints already share a component would close a cycle and is
// rejected outright. There is no per-vertex final check and no early
// acceptance: the family accepts unconditionally once all edges have
// been decided.
type Forest struct {
	a scheduleAdapter
	m int
}

// NewForest builds the Forest family over g and sched.
func NewForest(g *core.Graph, sched *frontier.Schedule) *Forest {
	return &Forest{a: newScheduleAdapter(g, sched), m: sched.NumEdges()}
}

func (f *Forest) ArrayWidth() int { return f.a.sched.MaxWidth() }
func (f *Forest) Arity() int      { return 2 }
func (f *Forest) NumEdges() int   { return f.m }

func (f *Forest) Init(scratch []int64) int {
	for i := range scratch {
		scratch[i] = 0
	}
	return f.m
}

func (f *Forest) Transition(scratch []int64, level int, value int) int {
	edgeIndex := f.m - level
	e := f.a.edge(edgeIndex)

	for _, v := range f.a.sched.Entering(edgeIndex) {
		scratch[f.a.mustSlot(v)] = int64(v)
	}

	frontierVs := f.a.sched.Frontier(edgeIndex)

	if value == 1 {
		p1, p2 := f.a.mustSlot(e.V1), f.a.mustSlot(e.V2)
		c1, c2 := int(scratch[p1]), int(scratch[p2])
		if c1 == c2 {
			return Reject
		}
		cmin, cmax := minMax(c1, c2)
		for _, v := range frontierVs {
			pos := f.a.mustSlot(v)
			if int(scratch[pos]) == cmin {
				scratch[pos] = int64(cmax)
			}
		}
	}

	for _, v := range f.a.sched.Leaving(edgeIndex) {
		scratch[f.a.mustSlot(v)] = 0
	}

	if level == 1 {
		return Accept
	}
	return level - 1
}
