package specs

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/frontier"
)

// STPath counts/enumerates simple paths between two fixed endpoints s
// and t. With Hamiltonian set, every vertex other than s,t must have
// degree exactly 2 and all vertices must have entered the frontier
// before the path closes, making the path touch every vertex; without
// it, other vertices may be isolated (degree 0) or sit on a degree-2
// detour. Grounded on FrontierSTPathSpec.
type STPath struct {
	a                scheduleAdapter
	m                int
	s, t             int
	hamiltonian      bool
	sEnteredEdgeIdx  int
	tEnteredEdgeIdx  int
	lastEntryEdgeIdx int
}

// NewSTPath builds the STPath family over g and sched for endpoints
// s,t (1-based vertex ids). hamiltonian selects the Hamiltonian s-t
// path variant.
func NewSTPath(g *core.Graph, sched *frontier.Schedule, s, t int, hamiltonian bool) (*STPath, error) {
	n := g.VertexCount()
	if s < 1 || s > n || t < 1 || t > n {
		return nil, fmt.Errorf("NewSTPath: s=%d t=%d n=%d: %w", s, t, n, ErrBadEndpoint)
	}
	sEntered, err := sched.FirstEdgeOf(s)
	if err != nil {
		return nil, fmt.Errorf("NewSTPath: %w", err)
	}
	tEntered, err := sched.FirstEdgeOf(t)
	if err != nil {
		return nil, fmt.Errorf("NewSTPath: %w", err)
	}
	return &STPath{
		a:                newScheduleAdapter(g, sched),
		m:                sched.NumEdges(),
		s:                s,
		t:                t,
		hamiltonian:      hamiltonian,
		sEnteredEdgeIdx:  sEntered,
		tEnteredEdgeIdx:  tEntered,
		lastEntryEdgeIdx: lastEntryEdgeIndex(sched),
	}, nil
}

func (p *STPath) ArrayWidth() int { return p.a.sched.MaxWidth() }
func (p *STPath) Arity() int      { return 2 }
func (p *STPath) NumEdges() int   { return p.m }

func (p *STPath) Init(scratch []int64) int {
	for i := range scratch {
		scratch[i] = packDegComp(0, 0)
	}
	return p.m
}

func (p *STPath) Transition(scratch []int64, level int, value int) int {
	edgeIndex := p.m - level
	e := p.a.edge(edgeIndex)

	for _, v := range p.a.sched.Entering(edgeIndex) {
		scratch[p.a.mustSlot(v)] = packDegComp(0, v)
	}

	frontierVs := p.a.sched.Frontier(edgeIndex)

	if value == 1 {
		p1, p2 := p.a.mustSlot(e.V1), p.a.mustSlot(e.V2)
		d1, c1 := unpackDeg(scratch[p1])+1, unpackComp(scratch[p1])
		d2, c2 := unpackDeg(scratch[p2])+1, unpackComp(scratch[p2])
		if d1 > 2 || d2 > 2 {
			return Reject
		}
		scratch[p1] = packDegComp(d1, c1)
		scratch[p2] = packDegComp(d2, c2)
		if c1 != c2 {
			cmin, cmax := minMax(c1, c2)
			mergeComponent(scratch, p.a, frontierVs, cmin, cmax)
		}
	}

	retired := make(map[int]bool, len(p.a.sched.Leaving(edgeIndex)))
	for _, v := range p.a.sched.Leaving(edgeIndex) {
		pos := p.a.mustSlot(v)
		deg := unpackDeg(scratch[pos])

		switch {
		case v == p.s || v == p.t:
			if deg != 1 {
				return Reject
			}
		case p.hamiltonian:
			if deg != 2 {
				return Reject
			}
		default:
			if deg != 0 && deg != 2 {
				return Reject
			}
		}

		compFound, degFound := componentClosed(scratch, p.a, frontierVs, v, retired)
		if !compFound && deg > 0 {
			if p.hamiltonian {
				if anyOtherLive(frontierVs, v, retired) || edgeIndex < p.lastEntryEdgeIdx {
					return Reject
				}
				return Accept
			}
			if degFound {
				return Reject
			}
			if edgeIndex < p.sEnteredEdgeIdx || edgeIndex < p.tEnteredEdgeIdx {
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
