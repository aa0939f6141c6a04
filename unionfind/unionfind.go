// Package unionfind provides a disjoint-set certifier used by the
// brute-force oracle tests in specs/: given an edge subset, is it a forest,
// is it a single spanning tree. It is the union-by-rank
// DSU from the teacher's prim_kruskal.Kruskal, stripped of the weight
// sorting and MST-selection logic that package built around it, since here
// we are certifying an already-chosen edge set rather than selecting one.
package unionfind

import "github.com/katalvlaran/lvlath/core"

// DSU is a union-find structure over vertex ids 1..n with path compression
// and union by rank.
type DSU struct {
	parent []int
	rank   []int
}

// New returns a DSU with n singleton sets, one per vertex id 1..n.
func New(n int) *DSU {
	d := &DSU{parent: make([]int, n+1), rank: make([]int, n+1)}
	for v := 1; v <= n; v++ {
		d.parent[v] = v
	}
	return d
}

// Find returns the representative of v's set, compressing the path.
func (d *DSU) Find(v int) int {
	for d.parent[v] != v {
		d.parent[v] = d.parent[d.parent[v]]
		v = d.parent[v]
	}
	return v
}

// Union merges the sets containing u and v; reports whether they were
// previously distinct.
func (d *DSU) Union(u, v int) bool {
	ru, rv := d.Find(u), d.Find(v)
	if ru == rv {
		return false
	}
	if d.rank[ru] < d.rank[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}
	return true
}

// IsForest reports whether the edges e_i with take[i] == true form a
// forest (no cycle) over g's n vertices.
func IsForest(g *core.Graph, take []bool) bool {
	d := New(g.VertexCount())
	for i, e := range g.Edges() {
		if i < len(take) && take[i] {
			if !d.Union(e.V1, e.V2) {
				return false
			}
		}
	}
	return true
}

// IsSpanningTree reports whether the edges e_i with take[i] == true form a
// single tree touching all n vertices: a forest with exactly n-1 edges
// and one component.
func IsSpanningTree(g *core.Graph, take []bool) bool {
	n := g.VertexCount()
	d := New(n)
	taken := 0
	for i, e := range g.Edges() {
		if i < len(take) && take[i] {
			if !d.Union(e.V1, e.V2) {
				return false
			}
			taken++
		}
	}
	if taken != n-1 {
		return false
	}
	root := d.Find(1)
	for v := 2; v <= n; v++ {
		if d.Find(v) != root {
			return false
		}
	}
	return true
}
