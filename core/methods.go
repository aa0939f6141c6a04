package core

import "fmt"

// AddVertex inserts label if unseen and returns its 1-based id. Calling
// AddVertex again with the same label is idempotent and returns the id
// assigned the first time.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(label string) (int, error) {
	if label == "" {
		return 0, ErrEmptyVertexLabel
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if id, ok := g.labelIndex[label]; ok {
		return id, nil
	}
	g.labels = append(g.labels, label)
	id := len(g.labels)
	g.labelIndex[label] = id

	return id, nil
}

// AddEdge appends an edge between labelA and labelB, inserting either
// endpoint that has not been seen before. The edge is appended to the end
// of the edge list: callers control edge order (and hence ZDD variable
// order) entirely through call order.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(labelA, labelB string) (Edge, error) {
	v1, err := g.AddVertex(labelA)
	if err != nil {
		return Edge{}, fmt.Errorf("AddEdge: %w", err)
	}
	v2, err := g.AddVertex(labelB)
	if err != nil {
		return Edge{}, fmt.Errorf("AddEdge: %w", err)
	}

	e := Edge{V1: v1, V2: v2}

	g.muEdge.Lock()
	g.edges = append(g.edges, e)
	g.muEdge.Unlock()

	return e, nil
}

// VertexCount returns n, the number of distinct vertices seen so far.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.labels)
}

// EdgeCount returns m, the number of edges appended so far.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.edges)
}

// Edge returns the i-th edge (0-based, in insertion order).
func (g *Graph) Edge(i int) (Edge, error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	if i < 0 || i >= len(g.edges) {
		return Edge{}, ErrEdgeNotFound
	}
	return g.edges[i], nil
}

// Edges returns a copy of the ordered edge list e_0..e_{m-1}.
func (g *Graph) Edges() []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// VertexLabel returns the original token vertex v (1-based) was first
// seen as, e.g. when v came from ReadEdgeList.
func (g *Graph) VertexLabel(v int) (string, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if v < 1 || v > len(g.labels) {
		return "", ErrVertexNotFound
	}
	return g.labels[v-1], nil
}

// Validate returns ErrNoVertices or ErrNoEdges if the graph has too
// few vertices or edges to build a frontier schedule from.
func (g *Graph) Validate() error {
	if g.VertexCount() == 0 {
		return ErrNoVertices
	}
	if g.EdgeCount() == 0 {
		return ErrNoEdges
	}
	return nil
}
