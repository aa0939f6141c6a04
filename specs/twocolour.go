package specs

import (
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/frontier"
)

// colourSlotter reindexes a scheduleAdapter's slot assignment into one
// of two disjoint planes of a shared scratch array, letting the
// single-cycle merge/closure helpers operate on either colour without
// knowing about the other.
type colourSlotter struct {
	a    scheduleAdapter
	base int
}

func (c colourSlotter) mustSlot(v int) int { return c.base + c.a.mustSlot(v) }

// TwoColourCycles counts/enumerates edge-colourings (colours 0 and 1,
// or "uncoloured"/excluded) in which the edges of each colour form a
// single cycle; the two cycles may share vertices but not edges.
// Scratch is split into two deg/comp planes, one per colour, plus two
// trailing "completed" bits recording whether that colour's cycle has
// already closed. Grounded on spec.md's multi-colour variant (4.4),
// reusing the single-cycle closure rule independently per colour.
type TwoColourCycles struct {
	a   scheduleAdapter
	m   int
	w   int // per-colour plane width == frontier max width
	c0  colourSlotter
	c1  colourSlotter
}

// NewTwoColourCycles builds the TwoColourCycles family over g and
// sched.
func NewTwoColourCycles(g *core.Graph, sched *frontier.Schedule) *TwoColourCycles {
	a := newScheduleAdapter(g, sched)
	w := sched.MaxWidth()
	return &TwoColourCycles{
		a:  a,
		m:  sched.NumEdges(),
		w:  w,
		c0: colourSlotter{a: a, base: 0},
		c1: colourSlotter{a: a, base: w},
	}
}

func (tc *TwoColourCycles) ArrayWidth() int { return 2*tc.w + 2 }
func (tc *TwoColourCycles) Arity() int      { return 3 }
func (tc *TwoColourCycles) NumEdges() int   { return tc.m }

func (tc *TwoColourCycles) completedIdx(colour int) int { return 2*tc.w + colour }

func (tc *TwoColourCycles) Init(scratch []int64) int {
	for i := range scratch {
		scratch[i] = 0
	}
	return tc.m
}

func (tc *TwoColourCycles) slotter(colour int) colourSlotter {
	if colour == 0 {
		return tc.c0
	}
	return tc.c1
}

func (tc *TwoColourCycles) Transition(scratch []int64, level int, value int) int {
	edgeIndex := tc.m - level
	e := tc.a.edge(edgeIndex)
	frontierVs := tc.a.sched.Frontier(edgeIndex)

	for colour := 0; colour < 2; colour++ {
		s := tc.slotter(colour)
		for _, v := range tc.a.sched.Entering(edgeIndex) {
			scratch[s.mustSlot(v)] = packDegComp(0, v)
		}
	}

	if value != 0 {
		colour := value - 1
		s := tc.slotter(colour)
		if scratch[tc.completedIdx(colour)] != 0 {
			return Reject
		}
		p1, p2 := s.mustSlot(e.V1), s.mustSlot(e.V2)
		d1, c1 := unpackDeg(scratch[p1])+1, unpackComp(scratch[p1])
		d2, c2 := unpackDeg(scratch[p2])+1, unpackComp(scratch[p2])
		if d1 > 2 || d2 > 2 {
			return Reject
		}
		scratch[p1] = packDegComp(d1, c1)
		scratch[p2] = packDegComp(d2, c2)
		if c1 != c2 {
			cmin, cmax := minMax(c1, c2)
			mergeComponent(scratch, s, frontierVs, cmin, cmax)
		}
	}

	for colour := 0; colour < 2; colour++ {
		s := tc.slotter(colour)
		retired := make(map[int]bool, len(tc.a.sched.Leaving(edgeIndex)))
		for _, v := range tc.a.sched.Leaving(edgeIndex) {
			pos := s.mustSlot(v)
			deg := unpackDeg(scratch[pos])
			if deg != 0 && deg != 2 {
				return Reject
			}

			compFound, degFound := componentClosed(scratch, s, frontierVs, v, retired)
			if !compFound && deg > 0 {
				if degFound {
					return Reject
				}
				scratch[tc.completedIdx(colour)] = 1
			}
			scratch[pos] = erasedSlot
			retired[v] = true
		}
	}

	if level == 1 {
		if scratch[tc.completedIdx(0)] != 0 && scratch[tc.completedIdx(1)] != 0 {
			return Accept
		}
		return Reject
	}
	return level - 1
}
