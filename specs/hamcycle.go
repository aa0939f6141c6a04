package specs

import (
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/frontier"
)

// HamCycle counts/enumerates edge subsets forming a single Hamiltonian
// cycle: every vertex has degree exactly 2, and the whole graph is one
// component. Same deg/comp packing as SingleCycle; the leaving
// constraint tightens to deg==2 and closure additionally requires every
// vertex to have already entered the frontier.
type HamCycle struct {
	a                 scheduleAdapter
	m                 int
	lastEntryEdgeIdx  int
}

// NewHamCycle builds the HamCycle family over g and sched.
func NewHamCycle(g *core.Graph, sched *frontier.Schedule) *HamCycle {
	return &HamCycle{
		a:                newScheduleAdapter(g, sched),
		m:                sched.NumEdges(),
		lastEntryEdgeIdx: lastEntryEdgeIndex(sched),
	}
}

func (s *HamCycle) ArrayWidth() int { return s.a.sched.MaxWidth() }
func (s *HamCycle) Arity() int      { return 2 }
func (s *HamCycle) NumEdges() int   { return s.m }

func (s *HamCycle) Init(scratch []int64) int {
	for i := range scratch {
		scratch[i] = packDegComp(0, 0)
	}
	return s.m
}

func (s *HamCycle) Transition(scratch []int64, level int, value int) int {
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
		if d1 > 2 || d2 > 2 {
			return Reject
		}
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
		if unpackDeg(scratch[pos]) != 2 {
			return Reject
		}

		compFound, _ := componentClosed(scratch, s.a, frontierVs, v, retired)
		if !compFound {
			if anyOtherLive(frontierVs, v, retired) || edgeIndex < s.lastEntryEdgeIdx {
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

// lastEntryEdgeIndex returns the edge index at which the last
// never-before-seen vertex enters the frontier, used by families whose
// closure policy requires every vertex to have already appeared.
func lastEntryEdgeIndex(sched *frontier.Schedule) int {
	last := 0
	for i := 0; i < sched.NumEdges(); i++ {
		if len(sched.Entering(i)) > 0 {
			last = i
		}
	}
	return last
}
