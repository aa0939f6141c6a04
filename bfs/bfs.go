// Package bfs provides breadth-first reachability over an edge subset of a
// core.Graph.
//
// This is oracle code: nothing in the frontier/specs/zdd packages depends
// on it. It gives an independently-derived answer to "is this edge set
// connected"; no test outside this package calls it.
package bfs

import "github.com/katalvlaran/lvlath/core"

// Reachable returns the set of vertices reachable from start using only
// edges e_i with take[i] == true. start itself is always included.
//
// Complexity: O(n + m).
func Reachable(g *core.Graph, take []bool, start int) map[int]bool {
	adj := adjacency(g, take)

	visited := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range adj[v] {
			if !visited[w] {
				visited[w] = true
				queue = append(queue, w)
			}
		}
	}

	return visited
}

// adjacency builds a plain adjacency list restricted to the taken edges.
func adjacency(g *core.Graph, take []bool) map[int][]int {
	edges := g.Edges()
	adj := make(map[int][]int, g.VertexCount())
	for i, e := range edges {
		if i < len(take) && take[i] {
			adj[e.V1] = append(adj[e.V1], e.V2)
			adj[e.V2] = append(adj[e.V2], e.V1)
		}
	}
	return adj
}
