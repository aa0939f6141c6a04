package specs

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/frontier"
)

// UnboundedDegree marks the upper end of a DegreeRange as having no
// ceiling.
const UnboundedDegree = -1

// DegreeRange constrains a single vertex's final degree to [Lo, Hi];
// Hi == UnboundedDegree means no upper bound.
type DegreeRange struct {
	Lo, Hi int
}

func (r DegreeRange) contains(deg int) bool {
	if deg < r.Lo {
		return false
	}
	return r.Hi == UnboundedDegree || deg <= r.Hi
}

// DegreeSpecified counts/enumerates edge subsets where every vertex's
// final degree falls within a caller-supplied per-vertex range.
// Grounded on FrontierDegreeSpecifiedSpec; unlike the cycle/path/tree
// families, this one has no connectivity constraint at all, so
// scratch holds a raw degree counter per frontier slot and nothing
// else.
type DegreeSpecified struct {
	a      scheduleAdapter
	m      int
	ranges []DegreeRange // ranges[v], 1-based; ranges[0] is unused
}

// NewDegreeSpecified builds the DegreeSpecified family over g and
// sched. ranges must carry one entry per vertex id, 1-based (index 0
// unused); give a vertex {0, UnboundedDegree} for "no constraint".
func NewDegreeSpecified(g *core.Graph, sched *frontier.Schedule, ranges []DegreeRange) (*DegreeSpecified, error) {
	n := g.VertexCount()
	if len(ranges) != n+1 {
		return nil, fmt.Errorf("NewDegreeSpecified: need %d ranges (1-based, index 0 unused), got %d", n+1, len(ranges))
	}
	return &DegreeSpecified{a: newScheduleAdapter(g, sched), m: sched.NumEdges(), ranges: ranges}, nil
}

func (d *DegreeSpecified) ArrayWidth() int { return d.a.sched.MaxWidth() }
func (d *DegreeSpecified) Arity() int      { return 2 }
func (d *DegreeSpecified) NumEdges() int   { return d.m }

func (d *DegreeSpecified) Init(scratch []int64) int {
	for i := range scratch {
		scratch[i] = 0
	}
	return d.m
}

func (d *DegreeSpecified) Transition(scratch []int64, level int, value int) int {
	edgeIndex := d.m - level
	e := d.a.edge(edgeIndex)

	for _, v := range d.a.sched.Entering(edgeIndex) {
		scratch[d.a.mustSlot(v)] = 0
	}

	if value == 1 {
		p1, p2 := d.a.mustSlot(e.V1), d.a.mustSlot(e.V2)
		scratch[p1]++
		scratch[p2]++
	}

	for _, v := range d.a.sched.Leaving(edgeIndex) {
		pos := d.a.mustSlot(v)
		if !d.ranges[v].contains(int(scratch[pos])) {
			return Reject
		}
		scratch[pos] = erasedSlot
	}

	if level == 1 {
		return Accept
	}
	return level - 1
}
