package core

import "errors"

// Sentinel errors for core graph operations: malformed input or an
// empty graph.
var (
	// ErrEmptyVertexLabel indicates a vertex token was the empty string.
	ErrEmptyVertexLabel = errors.New("core: vertex label is empty")

	// ErrNoVertices indicates the graph has no vertices.
	ErrNoVertices = errors.New("core: graph has no vertices")

	// ErrNoEdges indicates the graph has no edges.
	ErrNoEdges = errors.New("core: graph has no edges")

	// ErrMalformedLine indicates an edge-list line did not split into
	// exactly two whitespace-separated tokens.
	ErrMalformedLine = errors.New("core: malformed edge-list line")

	// ErrVertexNotFound indicates a 1-based vertex id outside [1, n].
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an edge index outside [0, m).
	ErrEdgeNotFound = errors.New("core: edge not found")
)
