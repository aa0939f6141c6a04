package specs

import (
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/frontier"
)

// mateErased marks a retired slot, distinct from every value a live mate
// can hold (0 for closed, or a 1..n vertex id), so a state's equivalence
// key never carries a leftover mate value past the vertex's retirement.
const mateErased int64 = -1

// MateCycle is an alternative encoding of the single-cycle family (see
// SingleCycle/HamCycle) that tracks, per frontier vertex, the other
// open end of its current path segment instead of a union-find
// component id: mate[v]==v means v is still isolated, mate[v]==0 means
// v already has both its edges and can never be extended again, and
// any other value names the vertex currently at the far end of v's
// growing chain. Taking an edge whose two endpoints are already each
// other's far tip closes the chain into a cycle; that is the only
// moment this family ever accepts. Grounded on spec.md's mate-style
// spec (4.3), specialised to the no-fixed-endpoints (cycle) case: the
// s,t endpoint bookkeeping that section also describes is carried
// instead by the union-find-based STPath family.
type MateCycle struct {
	a                scheduleAdapter
	m                int
	hamiltonian      bool
	lastEntryEdgeIdx int
}

// NewMateCycle builds the MateCycle family over g and sched.
// hamiltonian requires the accepted cycle to visit every vertex.
func NewMateCycle(g *core.Graph, sched *frontier.Schedule, hamiltonian bool) *MateCycle {
	return &MateCycle{
		a:                newScheduleAdapter(g, sched),
		m:                sched.NumEdges(),
		hamiltonian:      hamiltonian,
		lastEntryEdgeIdx: lastEntryEdgeIndex(sched),
	}
}

func (c *MateCycle) ArrayWidth() int { return c.a.sched.MaxWidth() }
func (c *MateCycle) Arity() int      { return 2 }
func (c *MateCycle) NumEdges() int   { return c.m }

func (c *MateCycle) Init(scratch []int64) int {
	for i := range scratch {
		scratch[i] = 0
	}
	return c.m
}

func (c *MateCycle) Transition(scratch []int64, level int, value int) int {
	edgeIndex := c.m - level
	e := c.a.edge(edgeIndex)

	for _, v := range c.a.sched.Entering(edgeIndex) {
		scratch[c.a.mustSlot(v)] = int64(v)
	}

	frontierVs := c.a.sched.Frontier(edgeIndex)

	if value == 1 {
		p1, p2 := c.a.mustSlot(e.V1), c.a.mustSlot(e.V2)
		a, b := scratch[p1], scratch[p2]
		if a == 0 || b == 0 {
			return Reject
		}
		if int(a) == e.V2 {
			if c.hamiltonian {
				if anyOtherLiveMate(scratch, c.a, frontierVs, e.V1, e.V2) {
					return Reject
				}
				if edgeIndex < c.lastEntryEdgeIdx {
					return Reject
				}
			} else if anyOtherOpenMate(scratch, c.a, frontierVs, e.V1, e.V2) {
				return Reject
			}
			return Accept
		}
		scratch[p1] = 0
		scratch[p2] = 0
		scratch[c.a.mustSlot(int(a))] = b
		scratch[c.a.mustSlot(int(b))] = a
	}

	for _, v := range c.a.sched.Leaving(edgeIndex) {
		pos := c.a.mustSlot(v)
		if c.hamiltonian {
			if scratch[pos] != 0 {
				return Reject
			}
		} else if scratch[pos] != 0 && scratch[pos] != int64(v) {
			return Reject
		}
		scratch[pos] = mateErased
	}

	if level == 1 {
		return Reject
	}
	return level - 1
}

// anyOtherOpenMate reports whether some frontier vertex other than
// v1,v2 is mid-chain: it has exactly one incident edge so far (mate
// neither itself nor the closed sentinel 0).
func anyOtherOpenMate(scratch []int64, a scheduleAdapter, frontierVs []int, v1, v2 int) bool {
	for _, w := range frontierVs {
		if w == v1 || w == v2 {
			continue
		}
		m := scratch[a.mustSlot(w)]
		if m != 0 && m != int64(w) {
			return true
		}
	}
	return false
}

// anyOtherLiveMate reports whether some frontier vertex other than
// v1,v2 is isolated or mid-chain (mate != 0): the Hamiltonian gate
// rejects a closing cycle unless every other frontier vertex already
// has degree 2 (mate == 0), so an isolated vertex (mate==itself) blocks
// acceptance just as much as a mid-chain one.
func anyOtherLiveMate(scratch []int64, a scheduleAdapter, frontierVs []int, v1, v2 int) bool {
	for _, w := range frontierVs {
		if w == v1 || w == v2 {
			continue
		}
		if scratch[a.mustSlot(w)] != 0 {
			return true
		}
	}
	return false
}
