package specs

import (
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/frontier"
)

// Tree counts/enumerates edge subsets forming a single connected,
// acyclic subgraph (a tree over whichever vertices it touches). With
// Spanning set, every vertex must be touched, making it a spanning
// tree. Same comp-merge rule as Forest plus a degree bit per vertex
// (touched or not) used to detect when the tree's component has fully
// closed. Grounded on FrontierTreeSpec.
type Tree struct {
	a                scheduleAdapter
	m                int
	spanning         bool
	lastEntryEdgeIdx int
}

// NewTree builds the Tree family over g and sched. spanning requires
// the accepted tree to touch every vertex.
func NewTree(g *core.Graph, sched *frontier.Schedule, spanning bool) *Tree {
	return &Tree{
		a:                newScheduleAdapter(g, sched),
		m:                sched.NumEdges(),
		spanning:         spanning,
		lastEntryEdgeIdx: lastEntryEdgeIndex(sched),
	}
}

func (t *Tree) ArrayWidth() int { return t.a.sched.MaxWidth() }
func (t *Tree) Arity() int      { return 2 }
func (t *Tree) NumEdges() int   { return t.m }

func (t *Tree) Init(scratch []int64) int {
	for i := range scratch {
		scratch[i] = packDegComp(0, 0)
	}
	return t.m
}

func (t *Tree) Transition(scratch []int64, level int, value int) int {
	edgeIndex := t.m - level
	e := t.a.edge(edgeIndex)

	for _, v := range t.a.sched.Entering(edgeIndex) {
		scratch[t.a.mustSlot(v)] = packDegComp(0, v)
	}

	frontierVs := t.a.sched.Frontier(edgeIndex)

	if value == 1 {
		p1, p2 := t.a.mustSlot(e.V1), t.a.mustSlot(e.V2)
		c1, c2 := unpackComp(scratch[p1]), unpackComp(scratch[p2])
		if c1 == c2 {
			return Reject
		}
		scratch[p1] = packDegComp(1, c1)
		scratch[p2] = packDegComp(1, c2)
		cmin, cmax := minMax(c1, c2)
		mergeComponent(scratch, t.a, frontierVs, cmin, cmax)
	}

	retired := make(map[int]bool, len(t.a.sched.Leaving(edgeIndex)))
	for _, v := range t.a.sched.Leaving(edgeIndex) {
		pos := t.a.mustSlot(v)
		touched := unpackDeg(scratch[pos]) > 0
		if t.spanning && !touched {
			return Reject
		}

		compFound, degFound := componentClosed(scratch, t.a, frontierVs, v, retired)
		if !compFound && touched {
			if t.spanning {
				if anyOtherLive(frontierVs, v, retired) {
					return Reject
				}
				if edgeIndex < t.lastEntryEdgeIdx {
					return Reject
				}
			} else if degFound {
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
