package specs

import (
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/frontier"
)

// SingleCycle counts/enumerates edge subsets forming exactly one simple
// cycle touching some nonempty subset of vertices, all other vertices
// isolated. Grounded on FrontierExampleSpec: each frontier slot packs a
// degree (0, 1, or 2) and a union-find component id; take increments
// both endpoints' degree and merges components; a leaving vertex must
// have degree 0 or 2, and the first vertex whose component has no other
// nonzero-degree member left closes the cycle.
type SingleCycle struct {
	a scheduleAdapter
	m int
}

// NewSingleCycle builds the SingleCycle family over g and sched.
func NewSingleCycle(g *core.Graph, sched *frontier.Schedule) *SingleCycle {
	return &SingleCycle{a: newScheduleAdapter(g, sched), m: sched.NumEdges()}
}

func (s *SingleCycle) ArrayWidth() int { return s.a.sched.MaxWidth() }
func (s *SingleCycle) Arity() int      { return 2 }
func (s *SingleCycle) NumEdges() int   { return s.m }

func (s *SingleCycle) Init(scratch []int64) int {
	for i := range scratch {
		scratch[i] = packDegComp(0, 0)
	}
	return s.m
}

func (s *SingleCycle) Transition(scratch []int64, level int, value int) int {
	edgeIndex := s.m - level
	e := s.a.edge(edgeIndex)

	for _, v := range s.a.sched.Entering(edgeIndex) {
		scratch[s.a.mustSlot(v)] = packDegComp(0, v)
	}

	frontierVs := s.a.sched.Frontier(edgeIndex)

	if value == 1 {
		p1, p2 := s.a.mustSlot(e.V1), s.a.mustSlot(e.V2)
		d1, c1 := unpackDeg(scratch[p1])+1, unpackComp(scratch[p1])
		d2, c2 := unpackDeg(scratch[p2])+1, unpackComp(scratch[p2])
		scratch[p1] = packDegComp(d1, c1)
		scratch[p2] = packDegComp(d2, c2)
		if c1 != c2 {
			cmin, cmax := minMax(c1, c2)
			mergeComponent(scratch, s.a, frontierVs, cmin, cmax)
		}
	}

	retired := make(map[int]bool, len(s.a.sched.Leaving(edgeIndex)))
	for _, v := range s.a.sched.Leaving(edgeIndex) {
		pos := s.a.mustSlot(v)
		deg := unpackDeg(scratch[pos])
		if deg != 0 && deg != 2 {
			return Reject
		}

		compFound, degFound := componentClosed(scratch, s.a, frontierVs, v, retired)
		if !compFound && deg > 0 {
			if degFound {
				return Reject
			}
			return Accept
		}

		scratch[pos] = erasedSlot
		retired[v] = true
	}

	if level == 1 {
		return Reject
	}
	return level - 1
}
