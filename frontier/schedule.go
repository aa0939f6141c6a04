package frontier

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// Schedule holds the per-edge entering/leaving/frontier vertex vectors
// and the slot assignment derived from a graph's edge order.
type Schedule struct {
	entering [][]int // entering[i]: vertices newly on the frontier after e_i
	leaving  [][]int // leaving[i]: vertices retired from the frontier after e_i
	frontier [][]int // frontier[i]: vertices live while e_i is processed (incl. leaving[i]), ascending
	slot     []int   // slot[v]: the reusable position assigned to vertex v (1-based v)
	firstEdge []int  // firstEdge[v]: the edge index at which v enters the frontier
	maxWidth int
}

// Build derives the frontier schedule from g.Edges(). The schedule is a
// pure function of the edge order: reordering g's edges (even over the
// same topology) can change every vector this returns.
func Build(g *core.Graph) (*Schedule, error) {
	edges := g.Edges()
	m := len(edges)
	if m == 0 {
		return nil, ErrEmptyGraph
	}
	n := g.VertexCount()

	entering, leaving := enteringAndLeaving(edges, n)

	sched := &Schedule{
		entering: entering,
		leaving:  leaving,
		frontier:  make([][]int, m),
		slot:      make([]int, n+1),
		firstEdge: make([]int, n+1),
	}

	// free holds reusable slot positions; seeded with n-1..0 so popping
	// from the back yields 0 first, matching the reference construction.
	free := make([]int, n)
	for i := range free {
		free[i] = n - 1 - i
	}

	current := make(map[int]bool, n)
	for i := 0; i < m; i++ {
		for _, v := range entering[i] {
			current[v] = true
			pos := free[len(free)-1]
			free = free[:len(free)-1]
			sched.slot[v] = pos
			sched.firstEdge[v] = i
		}

		if len(current) > sched.maxWidth {
			sched.maxWidth = len(current)
		}

		fv := make([]int, 0, len(current))
		for v := range current {
			fv = append(fv, v)
		}
		sortInts(fv)
		sched.frontier[i] = fv

		for _, v := range leaving[i] {
			delete(current, v)
			free = append(free, sched.slot[v])
		}
	}

	return sched, nil
}

// enteringAndLeaving computes, for each edge index i, the vertices that
// enter the frontier processing e_i (first forward pass) and the
// vertices that leave once e_i is processed (backward pass).
func enteringAndLeaving(edges []core.Edge, n int) (entering, leaving [][]int) {
	m := len(edges)
	entering = make([][]int, m)
	leaving = make([][]int, m)

	seen := make(map[int]bool, n)
	for i, e := range edges {
		for _, v := range [2]int{e.V1, e.V2} {
			if !seen[v] {
				seen[v] = true
				entering[i] = append(entering[i], v)
			}
		}
	}

	left := make(map[int]bool, n)
	for i := m - 1; i >= 0; i-- {
		e := edges[i]
		for _, v := range [2]int{e.V1, e.V2} {
			if !left[v] {
				left[v] = true
				leaving[i] = append(leaving[i], v)
			}
		}
	}

	return entering, leaving
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// NumEdges returns m, the number of edges this schedule was built over.
func (s *Schedule) NumEdges() int { return len(s.entering) }

// MaxWidth returns the maximum frontier size observed across all edges.
func (s *Schedule) MaxWidth() int { return s.maxWidth }

// Entering returns the vertices newly on the frontier when e_i is
// processed.
func (s *Schedule) Entering(i int) []int { return s.entering[i] }

// Leaving returns the vertices retired from the frontier once e_i is
// processed.
func (s *Schedule) Leaving(i int) []int { return s.leaving[i] }

// Frontier returns the vertices live on the frontier while e_i is
// processed, in ascending order: both endpoints of e_i and every vertex
// incident to an earlier and a later edge. Vertices in Leaving(i) are
// included.
func (s *Schedule) Frontier(i int) []int { return s.frontier[i] }

// FirstEdgeOf returns the edge index at which v first enters the
// frontier, i.e. the smallest edge index incident to v.
func (s *Schedule) FirstEdgeOf(v int) (int, error) {
	if v < 1 || v >= len(s.firstEdge) {
		return 0, fmt.Errorf("frontier: vertex %d out of range", v)
	}
	return s.firstEdge[v], nil
}

// Slot returns the reusable state-array position assigned to v. The
// position is only meaningful while v is on the frontier; callers must
// consult Entering/Leaving to know a slot's valid lifetime.
func (s *Schedule) Slot(v int) (int, error) {
	if v < 1 || v >= len(s.slot) {
		return 0, fmt.Errorf("frontier: vertex %d out of range", v)
	}
	return s.slot[v], nil
}
