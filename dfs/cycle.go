// Package dfs provides cycle detection over an edge subset of a core.Graph.
//
// Like bfs, this is oracle code used only by the brute-force tests in
// specs/ to independently certify "is this accepted edge set acyclic".
// The traversal is the classic parent-skipping DFS for undirected
// graphs, adapted from the teacher's dfs/cycle.go.
package dfs

import "github.com/katalvlaran/lvlath/core"

// HasCycle reports whether the subgraph induced by the edges e_i with
// take[i] == true contains a cycle. Parallel edges between the same pair
// of vertices count as a cycle of length 2.
//
// Complexity: O(n + m).
func HasCycle(g *core.Graph, take []bool) bool {
	edges := g.Edges()
	adj := make(map[int][]edgeRef, g.VertexCount())
	for i, e := range edges {
		if i >= len(take) || !take[i] {
			continue
		}
		adj[e.V1] = append(adj[e.V1], edgeRef{to: e.V2, idx: i})
		adj[e.V2] = append(adj[e.V2], edgeRef{to: e.V1, idx: i})
	}

	visited := make(map[int]bool, len(adj))
	for v := range adj {
		if visited[v] {
			continue
		}
		if hasCycleFrom(adj, visited, v, -1) {
			return true
		}
	}

	return false
}

type edgeRef struct {
	to  int
	idx int
}

// hasCycleFrom walks from v, skipping only the single incoming tree edge
// (identified by parentEdge, not parent vertex, so that a pair of parallel
// edges between the same two vertices is correctly reported as a cycle).
func hasCycleFrom(adj map[int][]edgeRef, visited map[int]bool, v, parentEdge int) bool {
	visited[v] = true
	for _, nb := range adj[v] {
		if nb.idx == parentEdge {
			continue
		}
		if visited[nb.to] {
			return true
		}
		if hasCycleFrom(adj, visited, nb.to, nb.idx) {
			return true
		}
	}
	return false
}
