package specs

import (
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/frontier"
)

// Matching counts/enumerates matchings: edge subsets where no two
// edges share an endpoint. With Complete set, every vertex must be
// covered (a perfect matching). Each frontier slot holds a single
// "used" bit; taking an edge whose endpoint is already used is
// rejected. Grounded on FrontierMatchingSpec, adapted to address the
// used bit by frontier slot rather than a graph-wide bitset, since a
// vertex's used status is never consulted again once it retires.
type Matching struct {
	a        scheduleAdapter
	m        int
	complete bool
}

// NewMatching builds the Matching family over g and sched. complete
// requires the accepted matching to cover every vertex.
func NewMatching(g *core.Graph, sched *frontier.Schedule, complete bool) *Matching {
	return &Matching{a: newScheduleAdapter(g, sched), m: sched.NumEdges(), complete: complete}
}

func (mt *Matching) ArrayWidth() int { return mt.a.sched.MaxWidth() }
func (mt *Matching) Arity() int      { return 2 }
func (mt *Matching) NumEdges() int   { return mt.m }

func (mt *Matching) Init(scratch []int64) int {
	for i := range scratch {
		scratch[i] = 0
	}
	return mt.m
}

func (mt *Matching) Transition(scratch []int64, level int, value int) int {
	edgeIndex := mt.m - level
	e := mt.a.edge(edgeIndex)

	for _, v := range mt.a.sched.Entering(edgeIndex) {
		scratch[mt.a.mustSlot(v)] = 0
	}

	if value == 1 {
		p1, p2 := mt.a.mustSlot(e.V1), mt.a.mustSlot(e.V2)
		if scratch[p1] != 0 || scratch[p2] != 0 {
			return Reject
		}
		scratch[p1] = 1
		scratch[p2] = 1
	}

	for _, v := range mt.a.sched.Leaving(edgeIndex) {
		pos := mt.a.mustSlot(v)
		if mt.complete && scratch[pos] == 0 {
			return Reject
		}
		scratch[pos] = 0
	}

	if level == 1 {
		return Accept
	}
	return level - 1
}
